package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BumpData is the short hop a box makes when it breaks.
type BumpData struct {
	Target   *donburi.Entry // the broken box
	Sequence *gween.Sequence
	Offset   float64 // current vertical offset in pixels
}

var Bump = donburi.NewComponentType[BumpData]()

// FlashData tints an actor after it takes a hit
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

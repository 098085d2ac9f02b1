package components

import (
	"github.com/automoto/blockhop/shared/physics"
	"github.com/yohamta/donburi"
)

// StaticData is a ground, platform or box block.
type StaticData struct {
	*physics.StaticObject
	Order int // position in the level file, drives last-writer resolution
}

var Static = donburi.NewComponentType[StaticData]()

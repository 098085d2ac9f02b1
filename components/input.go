package components

import (
	cfg "github.com/automoto/blockhop/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool { return i.Current[a] }

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

// Advance moves the current frame into the previous slot and clears it.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()

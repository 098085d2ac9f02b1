package systems

import (
	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateWorld steps the simulation once per frame with the polled input.
func NewUpdateWorld(w *core.World) ecs.System {
	return func(e *ecs.ECS) {
		w.Update(PhysicsInput(GetInput(e)), 1/float64(ebiten.TPS()))
	}
}

// UpdateFlash counts down hit flashes.
func UpdateFlash(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if f := components.Flash.Get(e); f.Duration > 0 {
			f.Duration--
		}
	})
}

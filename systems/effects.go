package systems

import (
	"github.com/automoto/blockhop/archetypes"
	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	bumpHeight   = 10   // pixels
	bumpDuration = 0.12 // seconds per leg
)

// SubscribeEffects spawns a bump whenever a box breaks and drops running
// bumps when the level resets.
func SubscribeEffects(w *core.World) {
	core.BoxBroken.Subscribe(w.Donburi(), spawnBump)
	core.WorldReset.Subscribe(w.Donburi(), clearBumps)
}

func clearBumps(world donburi.World, _ core.ResetEvent) {
	var bumps []donburi.Entity
	components.Bump.Each(world, func(e *donburi.Entry) {
		bumps = append(bumps, e.Entity())
	})
	for _, e := range bumps {
		world.Remove(e)
	}
}

func spawnBump(world donburi.World, ev core.BoxEvent) {
	if ev.Entry == nil || !ev.Entry.Valid() {
		return
	}
	bump := archetypes.Bump.Spawn(world)

	// up then back down
	seq := gween.NewSequence(
		gween.New(0, bumpHeight, bumpDuration, ease.OutQuad),
		gween.New(bumpHeight, 0, bumpDuration, ease.InQuad),
	)
	components.Bump.SetValue(bump, components.BumpData{Target: ev.Entry, Sequence: seq})
}

// UpdateEffects advances bump tweens and drops finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1 / float64(ebiten.TPS()))

	var done []donburi.Entity
	components.Bump.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bump.Get(e)
		if b.Target == nil || !b.Target.Valid() {
			done = append(done, e.Entity())
			return
		}
		offset, _, finished := b.Sequence.Update(dt)
		b.Offset = float64(offset)
		if finished {
			done = append(done, e.Entity())
		}
	})
	for _, e := range done {
		ecs.World.Remove(e)
	}
}

// bumpOffsets maps each bumping box to its current lift.
func bumpOffsets(world donburi.World) map[*donburi.Entry]float64 {
	out := map[*donburi.Entry]float64{}
	components.Bump.Each(world, func(e *donburi.Entry) {
		b := components.Bump.Get(e)
		out[b.Target] = b.Offset
	})
	return out
}

package archetypes

import (
	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Flash,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Static,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Static,
		components.Object,
	)
	Box = newArchetype(
		tags.Box,
		components.Static,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Bump = newArchetype(
		components.Bump,
	)
	Editor = newArchetype(
		components.Editor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}

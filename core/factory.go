package core

import (
	"github.com/automoto/blockhop/archetypes"
	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func createSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

func createCamera(w donburi.World, s Settings) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Follow: physics.NewCamera(s.Camera, s.Tile, s.Scale),
	})
	return camera
}

func createLevel(w donburi.World, l *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Current:  l,
		Checksum: l.Checksum(),
	})
	return level
}

var staticKinds = map[leveldata.Kind]physics.StaticKind{
	leveldata.KindGround:   physics.StaticGround,
	leveldata.KindPlatform: physics.StaticPlatform,
	leveldata.KindBox:      physics.StaticBox,
}

// createStatic spawns a block. Its broad-phase object is added to the space
// by World.index.
func createStatic(w donburi.World, rec leveldata.Record, order int, tile dmath.Vec2) *donburi.Entry {
	kind := staticKinds[rec.Kind]

	var entry *donburi.Entry
	var tag string
	switch kind {
	case physics.StaticPlatform:
		entry, tag = archetypes.Platform.Spawn(w), tags.ResolvPlatform
	case physics.StaticBox:
		entry, tag = archetypes.Box.Spawn(w), tags.ResolvBox
	default:
		entry, tag = archetypes.Ground.Spawn(w), tags.ResolvGround
	}

	pos := dmath.Vec2{X: float64(rec.X) * tile.X, Y: float64(rec.Y) * tile.Y}
	static := physics.NewStatic(kind, pos, rec.Width, rec.Height)
	components.Static.SetValue(entry, components.StaticData{StaticObject: static, Order: order})

	r := static.Rect(tile)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvStatic, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	return entry
}

func createActor(w donburi.World, rec leveldata.Record, s Settings) *donburi.Entry {
	spawn := dmath.Vec2{X: float64(rec.X) * s.Tile.X, Y: float64(rec.Y) * s.Tile.Y}

	var entry *donburi.Entry
	var actor *physics.Actor
	if rec.Kind == leveldata.KindPlayer {
		entry = archetypes.Player.Spawn(w)
		actor = physics.NewActor(physics.KindPlayer, s.Player, rec.Width, rec.Height, spawn)
	} else {
		entry = archetypes.Enemy.Spawn(w)
		actor = physics.NewActor(physics.KindEnemy, s.Enemy, rec.Width, rec.Height, spawn)
	}
	components.Actor.SetValue(entry, components.ActorData{Actor: actor})
	return entry
}

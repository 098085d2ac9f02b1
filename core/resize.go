package core

import (
	"math"

	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/gamemath"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Resize changes the canvas and tile size. Everything measured in pixels
// is scaled by the tile ratio so the level keeps its layout in tiles.
// Zero components keep their current value.
func (w *World) Resize(canvas, tile dmath.Vec2) {
	if canvas.X > 0 && canvas.Y > 0 {
		w.settings.Canvas = canvas
	}
	old := w.settings.Tile
	if tile.X <= 0 || tile.Y <= 0 {
		tile = old
	}
	rx, ry := tile.X/old.X, tile.Y/old.Y
	w.settings.Tile = tile

	cam := components.Camera.Get(w.camera)
	cam.Follow.Resize(tile)
	cam.Origin = dmath.Vec2{X: cam.Origin.X * rx, Y: cam.Origin.Y * ry}
	cam.Pending = physics.Scroll{
		DX: int(math.Round(float64(cam.Pending.DX) * rx)),
		DY: int(math.Round(float64(cam.Pending.DY) * ry)),
	}

	for el := w.statics.Front(); el != nil; el = el.Next() {
		el.Key.Pos = scalePos(el.Key.Pos, rx, ry)
	}
	scaleActor := func(e *donburi.Entry) {
		a := components.Actor.Get(e)
		a.Pos = scalePos(a.Pos, rx, ry)
		a.Spawn = scalePos(a.Spawn, rx, ry)
		a.Speed = dmath.Vec2{X: a.Speed.X * rx, Y: a.Speed.Y * ry}
		a.PeakSpeed *= rx
	}
	tags.Player.Each(w.world, scaleActor)
	tags.Enemy.Each(w.world, scaleActor)

	if w.level != nil {
		w.index(components.Level.Get(w.level).Current)
	}
	w.logger.Debug("world resized", "canvas", w.settings.Canvas, "tile", tile)
}

// scalePos scales a position and rounds it back onto whole pixels.
func scalePos(p dmath.Vec2, rx, ry float64) dmath.Vec2 {
	return dmath.Vec2{X: gamemath.Round(p.X * rx), Y: gamemath.Round(p.Y * ry)}
}

package core

import (
	"math"

	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// The broad-phase grid never grows past this many cells per axis. Statics
// beyond it are tracked in the loose list instead.
const (
	maxSpaceColumns = 2048
	maxSpaceRows    = 256
)

// index builds the broad-phase space for the current statics. The space
// covers the level plus one view so the viewport never leaves it.
func (w *World) index(l *leveldata.Level) {
	tile := w.settings.Tile
	cellW, cellH := max(int(tile.X), 1), max(int(tile.Y), 1)
	bw, bh := l.Bounds()
	width := spaceExtent(bw, tile.X, w.settings.Canvas.X, cellW, maxSpaceColumns)
	height := spaceExtent(bh, tile.Y, w.settings.Canvas.Y, cellH, maxSpaceRows)

	if w.space != nil {
		w.world.Remove(w.space.Entity())
	}
	w.space = createSpace(w.world, width, height, cellW, cellH)
	space := components.Space.Get(w.space)

	w.loose = nil
	for el := w.statics.Front(); el != nil; el = el.Next() {
		r := el.Key.Rect(tile)
		obj := components.Object.Get(el.Value).Object
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
		obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
		if r.Left() < 0 || r.Bottom() < 0 || r.Right() > float64(width) || r.Top() > float64(height) {
			w.loose = append(w.loose, el.Value)
			continue
		}
		space.Add(obj)
	}

	w.viewport = resolv.NewObject(0, 0, w.settings.Canvas.X, float64(height), tags.ResolvViewport)
	space.Add(w.viewport)
}

// spaceExtent returns the pixel size of one space axis: the level extent in
// tiles plus one view, capped at limit cells.
func spaceExtent(tiles int, tile, view float64, cell, limit int) int {
	px := math.Max(float64(tiles), 0)*tile + view
	return int(math.Min(math.Max(px, float64(cell)), float64(cell*limit)))
}

// updateVisibility marks what the view overlaps horizontally and returns
// the visible statics in level order. The viewport check narrows the
// candidates, the band test decides.
func (w *World) updateVisibility(cam *components.CameraData) []*physics.StaticObject {
	tile := w.settings.Tile
	left := cam.Origin.X
	right := left + w.settings.Canvas.X
	inBand := func(r physics.Rect) bool { return r.Right() > left && r.Left() < right }

	near := make(map[*donburi.Entry]struct{}, len(w.loose))
	for _, e := range w.loose {
		near[e] = struct{}{}
	}
	if w.viewport != nil {
		w.viewport.X = left
		w.viewport.W = w.settings.Canvas.X
		w.viewport.Update()
		if check := w.viewport.Check(0, 0, tags.ResolvStatic); check != nil {
			for _, obj := range check.Objects {
				if e, ok := obj.Data.(*donburi.Entry); ok {
					near[e] = struct{}{}
				}
			}
		}
	}

	visible := make([]*physics.StaticObject, 0, len(near))
	for el := w.statics.Front(); el != nil; el = el.Next() {
		s := el.Key
		_, ok := near[el.Value]
		s.OnScreen = ok && inBand(s.Rect(tile))
		if s.OnScreen {
			visible = append(visible, s)
		}
	}

	tags.Enemy.Each(w.world, func(e *donburi.Entry) {
		a := components.Actor.Get(e).Actor
		a.OnScreen = inBand(a.Rect(tile))
	})
	if e, ok := w.playerEntry(); ok {
		components.Actor.Get(e).OnScreen = true
	}
	return visible
}

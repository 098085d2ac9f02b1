package core

import (
	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func (w *World) playerEntry() (*donburi.Entry, bool) {
	return tags.Player.First(w.world)
}

// Player returns the player actor, if the level has one.
func (w *World) Player() (*physics.Actor, bool) {
	e, ok := w.playerEntry()
	if !ok {
		return nil, false
	}
	return components.Actor.Get(e).Actor, true
}

// Enemies returns the enemies still in the world.
func (w *World) Enemies() []*physics.Actor {
	var out []*physics.Actor
	tags.Enemy.Each(w.world, func(e *donburi.Entry) {
		out = append(out, components.Actor.Get(e).Actor)
	})
	return out
}

// Statics returns the level geometry in file order.
func (w *World) Statics() []*physics.StaticObject {
	out := make([]*physics.StaticObject, 0, w.statics.Len())
	for el := w.statics.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}

// Level returns the running level, or nil.
func (w *World) Level() *leveldata.Level {
	if w.level == nil {
		return nil
	}
	return components.Level.Get(w.level).Current
}

// Origin is the world position of the view's bottom-left corner.
func (w *World) Origin() dmath.Vec2 { return components.Camera.Get(w.camera).Origin }

func (w *World) Camera() *physics.Camera { return components.Camera.Get(w.camera).Follow }

func (w *World) Settings() Settings { return w.settings }

func (w *World) Stats() Stats { return w.stats }

// Space is the broad-phase space, nil before a level is loaded.
func (w *World) Space() *resolv.Space {
	if w.space == nil {
		return nil
	}
	return components.Space.Get(w.space)
}

// Donburi exposes the entity world so render systems and event
// subscribers can reach the same entities.
func (w *World) Donburi() donburi.World { return w.world }

// ScreenRect converts a world rectangle into y-down canvas coordinates.
func (w *World) ScreenRect(r physics.Rect) physics.Rect {
	o := w.Origin()
	return physics.Rect{
		X: r.X - o.X,
		Y: w.settings.Canvas.Y - (r.Y - o.Y) - r.H,
		W: r.W,
		H: r.H,
	}
}

// Package core owns a running level: its entities, the broad phase used to
// decide what is on screen, the follow camera and the per-tick order in
// which actors are simulated. It never touches ebitengine so it can run
// headless in tests and in the simulate command.
package core

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/charmbracelet/log"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNoLevel is returned when a world is asked to load a nil level.
var ErrNoLevel = errors.New("no level loaded")

// Stats counts what happened since the world was created.
type Stats struct {
	Ticks          int
	Resets         int
	BoxesBroken    int
	EnemiesRemoved int
	Scrolls        int
}

type World struct {
	world    donburi.World
	settings Settings
	base     dmath.Vec2 // tile size at construction
	logger   *log.Logger

	level    *donburi.Entry
	camera   *donburi.Entry
	space    *donburi.Entry
	viewport *resolv.Object

	// statics in level file order, so last-writer resolution does not
	// depend on entity storage order
	statics *orderedmap.OrderedMap[*physics.StaticObject, *donburi.Entry]
	loose   []*donburi.Entry // statics the space grid cannot hold

	stats Stats
}

// New creates an empty world. Load a level before calling Update.
func New(s Settings, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s = s.normalized()
	if fitted, ok := s.fitCamera(); ok {
		logger.Warn("camera bounds exceed the canvas",
			"top", s.Camera.Top, "fitted_top", fitted.Camera.Top, "bottom", fitted.Camera.Bottom)
		s = fitted
	}

	w := &World{
		world:    donburi.NewWorld(),
		settings: s,
		base:     s.Tile,
		logger:   logger,
		statics:  orderedmap.NewOrderedMap[*physics.StaticObject, *donburi.Entry](),
	}
	w.camera = createCamera(w.world, s)

	CameraScrolled.Subscribe(w.world, w.onScrolled)
	BoxBroken.Subscribe(w.world, w.onBoxBroken)
	ActorDied.Subscribe(w.world, w.onActorDied)
	return w
}

// LoadLevel replaces whatever is running with l.
func (w *World) LoadLevel(l *leveldata.Level) error {
	if l == nil {
		return ErrNoLevel
	}

	w.clear()
	if w.level != nil {
		w.world.Remove(w.level.Entity())
	}
	w.level = createLevel(w.world, l)
	w.build(l)
	w.resetCamera()

	data := components.Level.Get(w.level)
	w.logger.Info("level loaded",
		"name", l.Name,
		"records", len(l.Records),
		"skipped", l.Skipped,
		"checksum", fmt.Sprintf("%016x", data.Checksum))
	if _, ok := l.Player(); !ok {
		w.logger.Warn("level has no player", "name", l.Name)
	}
	return nil
}

// ChangeLevel switches to another level.
func (w *World) ChangeLevel(l *leveldata.Level) error {
	if err := w.LoadLevel(l); err != nil {
		return fmt.Errorf("failed to change level: %w", err)
	}
	return nil
}

// Update advances the world by one tick. dt is ignored when the settings
// carry a fixed step.
func (w *World) Update(in physics.Input, dt float64) {
	if w.level == nil {
		return
	}
	if w.settings.FixedStep > 0 {
		dt = w.settings.FixedStep
	}
	st := w.step(dt)
	cam := components.Camera.Get(w.camera)

	w.applyScroll(cam)
	visible := w.updateVisibility(cam)
	enemies := w.updateEnemies(st, visible)
	if entry, ok := w.playerEntry(); ok {
		w.updatePlayer(entry, in, st, visible, enemies, cam)
	}

	w.stats.Ticks++
	events.ProcessAllEvents(w.world)
}

func (w *World) step(dt float64) physics.Step {
	st := physics.NewStep(dt, w.settings.Tile)
	st.Scale = w.settings.Scale
	st.Mode = w.settings.Mode
	st.SizeRatio = dmath.Vec2{
		X: w.settings.Tile.X / w.base.X,
		Y: w.settings.Tile.Y / w.base.Y,
	}
	return st
}

// applyScroll moves the origin and the follow box together by the shift
// the camera asked for on the previous tick.
func (w *World) applyScroll(cam *components.CameraData) {
	if cam.Pending.IsZero() {
		return
	}
	cam.Follow.Move(cam.Pending)
	cam.Origin.X += float64(cam.Pending.DX)
	cam.Origin.Y += float64(cam.Pending.DY)
	cam.Pending = physics.Scroll{}
}

func (w *World) updateEnemies(st physics.Step, visible []*physics.StaticObject) []*physics.Actor {
	tile := w.settings.Tile

	var dead []*donburi.Entry
	var live []*physics.Actor
	tags.Enemy.Each(w.world, func(e *donburi.Entry) {
		a := components.Actor.Get(e).Actor
		if !a.Alive() || a.Rect(tile).Top() < w.settings.FallThreshold {
			dead = append(dead, e)
			return
		}
		live = append(live, a)
	})

	for _, e := range dead {
		a := components.Actor.Get(e).Actor
		cause := CauseStomped
		if a.Alive() {
			cause = CauseFell
		}
		ActorDied.Publish(w.world, DeathEvent{Kind: a.Kind, Pos: a.Pos, Cause: cause})
		w.world.Remove(e.Entity())
	}

	// off-screen enemies keep their state until the view reaches them
	for _, a := range live {
		if a.OnScreen {
			a.Update(physics.Input{}, st, visible, nil)
		}
	}
	return live
}

func (w *World) updatePlayer(entry *donburi.Entry, in physics.Input, st physics.Step, visible []*physics.StaticObject, enemies []*physics.Actor, cam *components.CameraData) {
	p := components.Actor.Get(entry).Actor

	if !p.Alive() || p.Rect(w.settings.Tile).Top() < w.settings.FallThreshold {
		cause := CauseFell
		if !p.Alive() {
			cause = CauseHit
		}
		ActorDied.Publish(w.world, DeathEvent{Kind: p.Kind, Pos: p.Pos, Cause: cause})
		w.reset(cause)
		return
	}

	if s, ok := cam.Follow.Check(p.Pos, p.Speed, p.Width, p.Height); ok {
		cam.Pending = s
		CameraScrolled.Publish(w.world, ScrollEvent{Scroll: s, Origin: cam.Origin})
	}

	rep := p.Update(in, st, visible, enemies)
	for _, box := range rep.Broken {
		e, _ := w.statics.Get(box)
		BoxBroken.Publish(w.world, BoxEvent{Entry: e, Box: box})
	}
	if rep.Hit && st.DT > 0 {
		flash := components.Flash.Get(entry)
		flash.Duration = int(math.Ceil(p.Tuning().RecoveryTime / st.DT))
		w.logger.Debug("player hit", "life", p.Life, "x", p.Pos.X, "y", p.Pos.Y)
	}
}

// Reset rebuilds the current level from its records.
func (w *World) Reset() {
	if w.level == nil {
		return
	}
	w.reset(CauseManual)
}

func (w *World) reset(cause DeathCause) {
	data := components.Level.Get(w.level)
	w.clear()
	w.build(data.Current)
	w.resetCamera()
	data.Resets++
	w.stats.Resets++

	w.logger.Info("world reset", "level", data.Current.Name, "cause", cause, "resets", data.Resets)
	WorldReset.Publish(w.world, ResetEvent{Level: data.Current.Name, Resets: data.Resets, Cause: cause})
}

func (w *World) resetCamera() {
	cam := components.Camera.Get(w.camera)
	cam.Follow.Reset()
	cam.Origin = dmath.Vec2{}
	cam.Pending = physics.Scroll{}
}

// build spawns statics and actors from l. Only the last player record
// spawns.
func (w *World) build(l *leveldata.Level) {
	for i, rec := range l.Records {
		if rec.Kind.IsActor() {
			continue
		}
		e := createStatic(w.world, rec, i, w.settings.Tile)
		w.statics.Set(components.Static.Get(e).StaticObject, e)
	}
	w.index(l)

	if rec, ok := l.Player(); ok {
		createActor(w.world, rec, w.settings)
	}
	for _, rec := range l.Records {
		if rec.Kind == leveldata.KindEnemy {
			createActor(w.world, rec, w.settings)
		}
	}
}

// clear removes every level entity. The level and camera entities stay.
func (w *World) clear() {
	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) { doomed = append(doomed, e.Entity()) }
	tags.Player.Each(w.world, collect)
	tags.Enemy.Each(w.world, collect)
	for el := w.statics.Front(); el != nil; el = el.Next() {
		collect(el.Value)
	}
	if w.space != nil {
		collect(w.space)
	}

	for _, e := range doomed {
		w.world.Remove(e)
	}
	w.statics = orderedmap.NewOrderedMap[*physics.StaticObject, *donburi.Entry]()
	w.loose = nil
	w.space = nil
	w.viewport = nil
}

package physics

import (
	"math"

	"github.com/automoto/blockhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Flags are the movement capabilities derived from collisions. The static
// resolver rebuilds them from scratch every tick.
type Flags struct {
	OnGround     bool
	CanMoveLeft  bool
	CanMoveRight bool
	CanMoveUp    bool
	CanUncrouch  bool
	Jumping      bool
}

// openFlags is the unobstructed flag set a collision pass starts from.
func openFlags(jumping bool) Flags {
	return Flags{
		CanMoveLeft:  true,
		CanMoveRight: true,
		CanMoveUp:    true,
		CanUncrouch:  true,
		Jumping:      jumping,
	}
}

// Actor is a moving body: the player or an enemy.
type Actor struct {
	Kind Kind

	Width      float64 // tiles
	Height     float64 // tiles, shrinks while crouched
	FullHeight float64

	Pos   dmath.Vec2 // pixels, rounded after every tick
	Spawn dmath.Vec2

	// Speed is the desired velocity, MovementSpeed the part of it that
	// survived collision clipping this tick.
	Speed         dmath.Vec2
	MovementSpeed dmath.Vec2

	Horizontal Direction
	Vertical   Direction

	Flags
	Crouched     bool
	Controllable bool

	SecondsMovingLeft  float64
	SecondsMovingRight float64
	SecondsStopping    float64
	SecondsFalling     float64
	SecondsRecovering  float64
	PeakSpeed          float64

	Life     int
	OnScreen bool

	tuning Tuning
}

// NewActor places an actor at spawn with a full set of capabilities.
func NewActor(kind Kind, tuning Tuning, width, height float64, spawn dmath.Vec2) *Actor {
	a := &Actor{
		Kind:       kind,
		Width:      width,
		Height:     height,
		FullHeight: height,
		Spawn:      spawn,
		Life:       tuning.Life,
		OnScreen:   true,
		tuning:     tuning,
	}
	a.Reset()
	return a
}

// Tuning returns the constants the actor was built with.
func (a *Actor) Tuning() Tuning { return a.tuning }

// IsPlayer reports whether the actor is the player variant.
func (a *Actor) IsPlayer() bool { return a.Kind.IsPlayer() }

// Rect is the actor's current pixel rectangle.
func (a *Actor) Rect(tile dmath.Vec2) Rect {
	return Rect{X: a.Pos.X, Y: a.Pos.Y, W: a.Width * tile.X, H: a.Height * tile.Y}
}

// Alive reports whether the actor still has life left.
func (a *Actor) Alive() bool { return a.Life >= 1 }

// Report lists the side effects of one actor tick.
type Report struct {
	Broken  []*StaticObject // boxes this tick broke
	Stomped []*Actor        // actors this tick landed on
	Hit     bool            // the actor took contact damage
}

// Update advances the actor by one tick. statics is the on-screen geometry
// and others the actors it may touch; enemies ignore in and others.
func (a *Actor) Update(in Input, st Step, statics []*StaticObject, others []*Actor) Report {
	if !a.IsPlayer() {
		return a.updateEnemy(st, statics)
	}

	a.recover(st.DT)

	if (in.Left || in.Right) && a.Controllable {
		a.SecondsStopping = 0
		a.Move(in.Left, in.Right, st)
	} else {
		a.slowDown(st.DT)
	}

	if !a.OnGround {
		a.Fall(st)
	} else {
		a.land()
	}

	if in.Jump && a.CanMoveUp && a.Controllable {
		a.Jump(0, st)
	}

	if in.Reset {
		a.Reset()
	}

	if in.Crouch && a.Controllable {
		a.Crouch()
	} else if a.CanUncrouch {
		a.UnCrouch()
	}

	a.faceVertical()
	a.MovementSpeed = a.Speed
	rep := a.collideStatic(st, statics)
	if a.Controllable {
		rep.Stomped, rep.Hit = ResolveActors(a, others, st.Tile)
	}
	a.commit()
	return rep
}

func (a *Actor) updateEnemy(st Step, statics []*StaticObject) Report {
	if !a.OnGround {
		a.Fall(st)
	} else {
		a.Speed.Y = 0
		a.SecondsFalling = 0
	}
	a.faceVertical()
	a.MovementSpeed = a.Speed
	rep := a.collideStatic(st, statics)
	a.commit()
	return rep
}

// Reset puts the actor back at its spawn with no velocity, default flags and
// full height. Life is left alone.
func (a *Actor) Reset() {
	a.Pos = a.Spawn
	a.Speed = dmath.Vec2{}
	a.MovementSpeed = dmath.Vec2{}
	a.Horizontal = DirectionNone
	a.Vertical = DirectionDown
	a.Flags = openFlags(false)
	a.Crouched = false
	a.Controllable = true
	a.Height = a.FullHeight
	a.SecondsMovingLeft = 0
	a.SecondsMovingRight = 0
	a.SecondsStopping = 0
	a.SecondsFalling = 0
	a.SecondsRecovering = 0
	a.PeakSpeed = 0
}

func (a *Actor) recover(dt float64) {
	if a.Controllable {
		return
	}
	a.SecondsRecovering += dt
	if a.SecondsRecovering > a.tuning.RecoveryTime {
		a.Controllable = true
		a.SecondsRecovering = 0
	}
}

func (a *Actor) faceVertical() {
	if a.Speed.Y > 0 {
		a.Vertical = DirectionUp
	} else {
		a.Vertical = DirectionDown
	}
}

func (a *Actor) collideStatic(st Step, statics []*StaticObject) Report {
	res := ResolveStatic(a.body(), statics, st.Tile, st.Mode)
	a.Pos = res.Pos
	a.Flags = res.Flags
	if res.StopX {
		a.MovementSpeed.X = 0
	}
	if res.StopY {
		a.MovementSpeed.Y = 0
	}
	if d := a.tuning.CeilingDamping; d > 0 {
		for i := 0; i < res.CeilingHits; i++ {
			a.Speed.Y /= d
		}
	}

	var rep Report
	for _, box := range res.Activated {
		if box.Activate() {
			rep.Broken = append(rep.Broken, box)
		}
	}
	return rep
}

func (a *Actor) commit() {
	a.Pos.X += gamemath.Round(a.MovementSpeed.X)
	a.Pos.Y += gamemath.Round(a.MovementSpeed.Y)
}

func (a *Actor) body() Body {
	return Body{
		Kind:       a.Kind,
		Pos:        a.Pos,
		Speed:      a.Speed,
		Width:      a.Width,
		Height:     a.Height,
		FullHeight: a.FullHeight,
		Crouched:   a.Crouched,
		Jumping:    a.Jumping,
	}
}

// heightEpsilon absorbs the rounding left by a crouch ratio that is not
// exactly representable.
const heightEpsilon = 1e-9

// Crouch shrinks the actor by the crouch ratio.
func (a *Actor) Crouch() {
	if a.Crouched {
		return
	}
	a.Height *= a.crouchRatio()
	a.Crouched = true
}

// UnCrouch grows the actor back by the inverse ratio. Callers check
// CanUncrouch first.
func (a *Actor) UnCrouch() {
	if !a.Crouched {
		return
	}
	a.Height /= a.crouchRatio()
	if math.Abs(a.Height-a.FullHeight) < heightEpsilon {
		a.Height = a.FullHeight
	}
	a.Crouched = false
}

func (a *Actor) crouchRatio() float64 {
	if a.tuning.CrouchRatio <= 0 {
		return 1
	}
	return a.tuning.CrouchRatio
}

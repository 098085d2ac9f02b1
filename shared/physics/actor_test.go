package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

var tile = dmath.Vec2{X: 32, Y: 32}

func testStep() Step { return NewStep(dt, tile) }

func ground(x, y, w, h float64) *StaticObject {
	return NewStatic(StaticGround, dmath.Vec2{X: x * tile.X, Y: y * tile.Y}, w, h)
}

func newPlayer(x, y float64) *Actor {
	return NewActor(KindPlayer, DefaultPlayerTuning(), 1, 2, dmath.Vec2{X: x, Y: y})
}

func run(a *Actor, in Input, statics []*StaticObject, ticks int) {
	for i := 0; i < ticks; i++ {
		a.Update(in, testStep(), statics, nil)
	}
}

func TestActorRestsWithoutJitter(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 1, 1)}
	a := newPlayer(0, 32)

	a.Update(Input{}, testStep(), statics, nil)
	for i := 0; i < 12; i++ {
		a.Update(Input{}, testStep(), statics, nil)
		require.True(t, a.OnGround, "tick %d", i)
		assert.Equal(t, 0.0, a.Speed.Y)
		assert.Equal(t, 32.0, a.Pos.Y)
		assert.Equal(t, 0.0, a.Pos.X)
	}
}

func TestActorFallsOntoGround(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 10, 1)}
	a := newPlayer(64, 160)

	run(a, Input{}, statics, 120)

	assert.True(t, a.OnGround)
	assert.Equal(t, 32.0, a.Pos.Y)
	assert.Equal(t, 64.0, a.Pos.X)
	assert.Equal(t, 0.0, a.Speed.Y)
}

func TestActorStopsAtWall(t *testing.T) {
	wall := ground(10, 1, 1, 3)
	statics := []*StaticObject{ground(0, 0, 20, 1), wall}
	a := newPlayer(200, 32)
	a.Update(Input{}, testStep(), statics, nil)
	require.True(t, a.CanMoveRight)

	blocked := false
	for i := 0; i < 120; i++ {
		a.Update(Input{Right: true}, testStep(), statics, nil)
		assert.LessOrEqual(t, a.Pos.X+tile.X, wall.Pos.X, "penetrated wall at tick %d", i)
		if !a.CanMoveRight && !blocked {
			blocked = true
			assert.Equal(t, wall.Pos.X-tile.X, a.Pos.X)
		}
	}
	assert.True(t, blocked)
	assert.False(t, a.CanMoveRight)
	assert.Equal(t, 288.0, a.Pos.X)
}

func TestActorAcceleratesAndDecays(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 100, 1)}
	a := newPlayer(64, 32)
	a.Update(Input{}, testStep(), statics, nil)

	prev := 0.0
	for i := 0; i < 30; i++ {
		a.Update(Input{Right: true}, testStep(), statics, nil)
		assert.GreaterOrEqual(t, a.Speed.X, prev)
		assert.Less(t, a.Speed.X, a.Tuning().MaxHorizontalSpeed)
		prev = a.Speed.X
	}
	assert.Equal(t, DirectionRight, a.Horizontal)
	assert.Equal(t, a.Speed.X, a.PeakSpeed)

	stopped := false
	for i := 0; i < 60; i++ {
		a.Update(Input{}, testStep(), statics, nil)
		assert.LessOrEqual(t, a.Speed.X, prev)
		prev = a.Speed.X
		if a.Horizontal == DirectionNone {
			stopped = true
			break
		}
	}
	assert.True(t, stopped)
	assert.Equal(t, 0.0, a.Speed.X)
}

func TestActorDirectionChangeRestartsCurve(t *testing.T) {
	a := newPlayer(0, 0)
	for i := 0; i < 20; i++ {
		a.Move(false, true, testStep())
	}
	require.Greater(t, a.Speed.X, 0.0)

	a.Move(true, false, testStep())
	assert.Equal(t, DirectionLeft, a.Horizontal)
	assert.Equal(t, 0.0, a.Speed.X)
	assert.Equal(t, dt, a.SecondsMovingLeft)

	a.Move(true, false, testStep())
	assert.Less(t, a.Speed.X, 0.0)
	assert.Equal(t, a.Speed.X, a.PeakSpeed)
}

func TestActorBothDirectionsCancel(t *testing.T) {
	a := newPlayer(0, 0)
	for i := 0; i < 20; i++ {
		a.Move(false, true, testStep())
	}
	a.Move(true, true, testStep())
	assert.Equal(t, 0.0, a.Speed.X)
	assert.Equal(t, 0.0, a.PeakSpeed)
	assert.Equal(t, 0.0, a.SecondsMovingLeft)
	assert.Equal(t, 0.0, a.SecondsMovingRight)
}

func TestActorSpeedScalesWithStep(t *testing.T) {
	st := testStep()
	st.Scale = 2
	a := newPlayer(0, 0)
	for i := 0; i < 600; i++ {
		a.Move(false, true, st)
	}
	assert.InDelta(t, 12.0, a.Speed.X, 1e-6)
	assert.LessOrEqual(t, a.Speed.X, 12.0)
}

func TestActorJump(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 10, 1)}
	a := newPlayer(64, 32)
	a.Update(Input{}, testStep(), statics, nil)
	require.True(t, a.OnGround)

	a.Update(Input{Jump: true}, testStep(), statics, nil)
	assert.True(t, a.Jumping)
	assert.False(t, a.OnGround)
	assert.Equal(t, 42.0, a.Pos.Y)
	assert.Equal(t, DirectionUp, a.Vertical)

	// no second impulse while airborne
	a.Update(Input{Jump: true}, testStep(), statics, nil)
	assert.Equal(t, 10.0, a.Speed.Y)

	run(a, Input{}, statics, 120)
	assert.True(t, a.OnGround)
	assert.False(t, a.Jumping)
	assert.Equal(t, 32.0, a.Pos.Y)
}

func TestActorJumpOverride(t *testing.T) {
	a := newPlayer(0, 0)
	a.OnGround = true
	a.Jump(17, testStep())
	assert.Equal(t, 17.0, a.Speed.Y)

	a.Jump(17, testStep())
	assert.Equal(t, 17.0, a.Speed.Y)
}

func TestActorTerminalFallSpeed(t *testing.T) {
	tuning := DefaultPlayerTuning()
	tuning.TerminalFallSpeed = 24
	a := NewActor(KindPlayer, tuning, 1, 2, dmath.Vec2{Y: 100000})
	run(a, Input{}, nil, 600)
	assert.Equal(t, -24.0, a.Speed.Y)
}

func TestActorFallIsUnclampedByDefault(t *testing.T) {
	require.Zero(t, DefaultPlayerTuning().TerminalFallSpeed)

	a := newPlayer(0, 100000)
	run(a, Input{}, nil, 120)
	assert.Less(t, a.Speed.Y, -100.0)
}

func TestCrouchRoundTrip(t *testing.T) {
	for _, h := range []float64{3, 6, 9} {
		a := NewActor(KindPlayer, DefaultPlayerTuning(), 1, h, dmath.Vec2{})
		a.Crouch()
		assert.True(t, a.Crouched)
		assert.InDelta(t, h*2/3, a.Height, 1e-9)
		a.UnCrouch()
		assert.False(t, a.Crouched)
		assert.Equal(t, h, a.Height)

		for i := 0; i < 100; i++ {
			a.Crouch()
			a.UnCrouch()
		}
		assert.Equal(t, h, a.FullHeight)
		assert.Equal(t, h, a.Height)
	}
}

func TestCrouchedUnderCeilingStaysCrouched(t *testing.T) {
	ceiling := ground(0, 3, 5, 1)
	statics := []*StaticObject{ground(0, 0, 5, 1), ceiling}
	a := NewActor(KindPlayer, DefaultPlayerTuning(), 1, 3, dmath.Vec2{X: 32, Y: 32})
	a.Crouch()

	a.Update(Input{Crouch: true}, testStep(), statics, nil)
	require.False(t, a.CanUncrouch)

	a.Update(Input{}, testStep(), statics, nil)
	assert.True(t, a.Crouched)
	assert.InDelta(t, 2.0, a.Height, 1e-9)
	assert.Equal(t, 32.0, a.Pos.Y)

	ceiling.OnScreen = false
	a.Update(Input{}, testStep(), statics, nil)
	assert.True(t, a.CanUncrouch)
	a.Update(Input{}, testStep(), statics, nil)
	assert.False(t, a.Crouched)
	assert.Equal(t, 3.0, a.Height)
}

func TestActorReset(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 10, 1)}
	a := newPlayer(64, 96)
	run(a, Input{Right: true}, statics, 40)
	a.Crouch()
	a.Controllable = false
	require.NotEqual(t, a.Spawn, a.Pos)

	a.Update(Input{Reset: true}, testStep(), statics, nil)
	assert.Equal(t, a.Spawn.X, a.Pos.X)
	assert.Equal(t, a.Spawn.Y, a.Pos.Y)
	assert.Equal(t, 0.0, a.Speed.X)
	assert.False(t, a.Crouched)
	assert.Equal(t, a.FullHeight, a.Height)
	assert.Equal(t, DirectionNone, a.Horizontal)
}

func TestEnemyIgnoresInput(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 10, 1)}
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 1, dmath.Vec2{X: 96, Y: 128})

	for i := 0; i < 120; i++ {
		e.Update(Input{Left: true, Jump: true}, testStep(), statics, nil)
	}
	assert.True(t, e.OnGround)
	assert.Equal(t, 96.0, e.Pos.X)
	assert.Equal(t, 32.0, e.Pos.Y)
	assert.Equal(t, 0.0, e.Speed.X)
}

func TestBoxBreaksOnceWhenLandedOnWhileJumping(t *testing.T) {
	box := NewStatic(StaticBox, dmath.Vec2{X: 64, Y: 96}, 1, 1)
	statics := []*StaticObject{ground(0, 0, 10, 1), box}
	a := newPlayer(64, 160)
	a.Jumping = true

	broken := 0
	for i := 0; i < 60; i++ {
		rep := a.Update(Input{}, testStep(), statics, nil)
		broken += len(rep.Broken)
	}
	assert.Equal(t, 1, broken)
	assert.True(t, box.Broken())
	assert.True(t, a.OnGround)
	assert.Equal(t, 128.0, a.Pos.Y)
	assert.False(t, box.Activate())
}

func TestBoxIgnoresLandingWithoutJump(t *testing.T) {
	box := NewStatic(StaticBox, dmath.Vec2{X: 64, Y: 96}, 1, 1)
	a := newPlayer(64, 160)

	run(a, Input{}, []*StaticObject{box}, 60)
	assert.False(t, box.Broken())
	assert.True(t, a.OnGround)
}

func TestBoxIgnoresEnemies(t *testing.T) {
	box := NewStatic(StaticBox, dmath.Vec2{X: 64, Y: 96}, 1, 1)
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 1, dmath.Vec2{X: 64, Y: 160})
	e.Jumping = true

	for i := 0; i < 60; i++ {
		e.Update(Input{}, testStep(), []*StaticObject{box}, nil)
	}
	assert.False(t, box.Broken())
}

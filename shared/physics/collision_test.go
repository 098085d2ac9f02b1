package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func body(x, y, w, h float64) Body {
	return Body{Kind: KindPlayer, Pos: dmath.Vec2{X: x, Y: y}, Width: w, Height: h, FullHeight: h}
}

func TestResolveStaticLanding(t *testing.T) {
	b := body(40, 40, 1, 2)
	b.Speed.Y = -12

	res := ResolveStatic(b, []*StaticObject{ground(0, 0, 4, 1)}, tile, ContactLastWriter)

	assert.True(t, res.Flags.OnGround)
	assert.True(t, res.StopY)
	assert.False(t, res.StopX)
	assert.Equal(t, 32.0, res.Pos.Y)
	assert.Equal(t, 40.0, res.Pos.X)
	assert.Equal(t, 40.0, b.Pos.Y, "body must not be modified")
}

func TestResolveStaticCeiling(t *testing.T) {
	b := body(40, 0, 1, 2)
	b.Speed.Y = 10
	b.Jumping = true

	res := ResolveStatic(b, []*StaticObject{ground(0, 2, 4, 1)}, tile, ContactLastWriter)

	assert.False(t, res.Flags.CanMoveUp)
	assert.False(t, res.Flags.Jumping)
	assert.True(t, res.StopY)
	assert.Equal(t, 1, res.CeilingHits)
	assert.Equal(t, 0.0, res.Pos.Y)
}

func TestResolveStaticSides(t *testing.T) {
	wall := ground(3, 0, 1, 3)

	moving := body(60, 0, 1, 2)
	moving.Speed.X = 6
	res := ResolveStatic(moving, []*StaticObject{wall}, tile, ContactLastWriter)
	assert.False(t, res.Flags.CanMoveRight)
	assert.True(t, res.Flags.CanMoveLeft)
	assert.True(t, res.StopX)
	assert.Equal(t, 64.0, res.Pos.X)

	back := body(130, 0, 1, 2)
	back.Speed.X = -6
	res = ResolveStatic(back, []*StaticObject{wall}, tile, ContactLastWriter)
	assert.False(t, res.Flags.CanMoveLeft)
	assert.True(t, res.Flags.CanMoveRight)
	assert.Equal(t, 128.0, res.Pos.X)
}

func TestResolveStaticTouchingSideIsFree(t *testing.T) {
	b := body(64, 0, 1, 2)
	res := ResolveStatic(b, []*StaticObject{ground(3, 0, 1, 3)}, tile, ContactLastWriter)
	assert.True(t, res.Flags.CanMoveRight)
	assert.False(t, res.StopX)
}

func TestResolveStaticSkipsOffScreen(t *testing.T) {
	g := ground(0, 0, 4, 1)
	g.OnScreen = false
	b := body(40, 32, 1, 2)

	res := ResolveStatic(b, []*StaticObject{g}, tile, ContactLastWriter)
	assert.False(t, res.Flags.OnGround)
	assert.Equal(t, b.Pos, res.Pos)
}

func TestResolveStaticFreshFlags(t *testing.T) {
	b := body(40, 200, 1, 2)
	b.Jumping = true
	res := ResolveStatic(b, nil, tile, ContactLastWriter)
	assert.Equal(t, Flags{
		CanMoveLeft:  true,
		CanMoveRight: true,
		CanMoveUp:    true,
		CanUncrouch:  true,
		Jumping:      true,
	}, res.Flags)
}

func TestResolveStaticAbovePriority(t *testing.T) {
	// corner contact: above and left both hold, above wins
	b := body(0, 32, 1, 2)
	b.Speed.X = 10
	b.Speed.Y = -5
	o := NewStatic(StaticGround, dmath.Vec2{X: 32, Y: 0}, 2, 1)

	res := ResolveStatic(b, []*StaticObject{o}, tile, ContactLastWriter)
	assert.True(t, res.Flags.OnGround)
	assert.True(t, res.Flags.CanMoveRight)
}

func TestResolveStaticOrderDependence(t *testing.T) {
	high := NewStatic(StaticGround, dmath.Vec2{X: 0, Y: 0}, 4, 1) // top at 32
	low := NewStatic(StaticGround, dmath.Vec2{X: 0, Y: -8}, 4, 1) // top at 24
	b := body(40, 40, 1, 2)
	b.Speed.Y = -20

	first := ResolveStatic(b, []*StaticObject{high, low}, tile, ContactLastWriter)
	second := ResolveStatic(b, []*StaticObject{low, high}, tile, ContactLastWriter)
	assert.Equal(t, 24.0, first.Pos.Y)
	assert.Equal(t, 32.0, second.Pos.Y)

	first = ResolveStatic(b, []*StaticObject{high, low}, tile, ContactNearest)
	second = ResolveStatic(b, []*StaticObject{low, high}, tile, ContactNearest)
	assert.Equal(t, 32.0, first.Pos.Y)
	assert.Equal(t, first, second)
}

func TestResolveStaticNearestSides(t *testing.T) {
	near := ground(3, 0, 1, 3)
	far := ground(4, 0, 1, 3)
	b := body(60, 0, 1, 2)
	b.Speed.X = 40

	res := ResolveStatic(b, []*StaticObject{near, far}, tile, ContactNearest)
	assert.Equal(t, 64.0, res.Pos.X)
	res = ResolveStatic(b, []*StaticObject{far, near}, tile, ContactNearest)
	assert.Equal(t, 64.0, res.Pos.X)
}

func TestResolveStaticUncrouchCheck(t *testing.T) {
	b := body(32, 32, 1, 2)
	b.FullHeight = 3
	b.Crouched = true

	low := ResolveStatic(b, []*StaticObject{ground(0, 0, 5, 1), ground(0, 3, 5, 1)}, tile, ContactLastWriter)
	assert.False(t, low.Flags.CanUncrouch)
	assert.True(t, low.Flags.OnGround)

	high := ResolveStatic(b, []*StaticObject{ground(0, 0, 5, 1), ground(0, 5, 5, 1)}, tile, ContactLastWriter)
	assert.True(t, high.Flags.CanUncrouch)
}

func TestStompDamagesOtherOnly(t *testing.T) {
	tuning := DefaultPlayerTuning()
	tuning.Life = 3
	p := NewActor(KindPlayer, tuning, 1, 2, dmath.Vec2{X: 100, Y: 70})
	p.Speed.Y = -10
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 1, dmath.Vec2{X: 100, Y: 32})

	stomped, hit := ResolveActors(p, []*Actor{e}, tile)

	require.Len(t, stomped, 1)
	assert.False(t, hit)
	assert.Equal(t, 0, e.Life)
	assert.Equal(t, 3, p.Life)
	assert.Equal(t, 64.0, p.Pos.Y)
	assert.Equal(t, tuning.FallbackSpeed, p.Speed.Y)
	assert.Equal(t, 0.0, p.MovementSpeed.Y)
	assert.True(t, p.Controllable)
}

func TestSideHitKnocksPlayerBack(t *testing.T) {
	tuning := DefaultPlayerTuning()
	tuning.Life = 3
	p := NewActor(KindPlayer, tuning, 1, 2, dmath.Vec2{X: 68, Y: 32})
	p.Speed.X = 5
	p.Horizontal = DirectionRight
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 2, dmath.Vec2{X: 100, Y: 32})

	stomped, hit := ResolveActors(p, []*Actor{e}, tile)

	assert.Empty(t, stomped)
	assert.True(t, hit)
	assert.Equal(t, 2, p.Life)
	assert.Equal(t, 1, e.Life)
	assert.False(t, p.Controllable)
	assert.Equal(t, 68.0, p.Pos.X)
	assert.Equal(t, -tuning.FallbackSpeed, p.Speed.X)
	assert.Equal(t, tuning.FallbackSpeed, p.Speed.Y)
	assert.Equal(t, p.Speed.X, p.PeakSpeed)
	assert.Equal(t, dmath.Vec2{}, p.MovementSpeed)
}

func TestKnockbackWithoutDirectionGoesLeft(t *testing.T) {
	p := newPlayer(100, 0)
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 1, dmath.Vec2{X: 100, Y: 64})

	_, hit := ResolveActors(p, []*Actor{e}, tile)

	require.True(t, hit)
	assert.Equal(t, DirectionLeft, p.Horizontal)
	assert.Equal(t, -p.Tuning().FallbackSpeed, p.Speed.X)
	assert.Equal(t, -p.Tuning().FallbackSpeed, p.Speed.Y)
	assert.Equal(t, 0.0, p.Pos.Y)
}

func TestResolveActorsSkipsHiddenAndDead(t *testing.T) {
	p := newPlayer(100, 32)
	hidden := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 2, dmath.Vec2{X: 110, Y: 32})
	hidden.OnScreen = false
	dead := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 2, dmath.Vec2{X: 110, Y: 32})
	dead.Life = 0

	stomped, hit := ResolveActors(p, []*Actor{hidden, dead, p}, tile)
	assert.Empty(t, stomped)
	assert.False(t, hit)
	assert.True(t, p.Controllable)
}

func TestRecoveryWindow(t *testing.T) {
	tuning := DefaultPlayerTuning()
	tuning.Life = 3
	p := NewActor(KindPlayer, tuning, 1, 2, dmath.Vec2{X: 68, Y: 32})
	p.Speed.X = 5
	p.Horizontal = DirectionRight
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 2, dmath.Vec2{X: 100, Y: 32})
	_, hit := ResolveActors(p, []*Actor{e}, tile)
	require.True(t, hit)

	ticks := 0
	for !p.Controllable && ticks < 120 {
		p.Update(Input{Right: true}, testStep(), nil, nil)
		ticks++
		if !p.Controllable {
			assert.LessOrEqual(t, p.Speed.X, 0.0, "input leaked during recovery")
		}
	}
	assert.True(t, p.Controllable)
	assert.InDelta(t, tuning.RecoveryTime, float64(ticks)*dt, dt+1e-9)
	assert.Equal(t, 2, p.Life)
}

func TestPlayerUpdateStompsEnemy(t *testing.T) {
	statics := []*StaticObject{ground(0, 0, 10, 1)}
	p := newPlayer(96, 200)
	e := NewActor(KindEnemy, DefaultEnemyTuning(), 1, 1, dmath.Vec2{X: 96, Y: 32})

	stomps := 0
	for i := 0; i < 60 && stomps == 0; i++ {
		e.Update(Input{}, testStep(), statics, nil)
		rep := p.Update(Input{}, testStep(), statics, []*Actor{e})
		stomps += len(rep.Stomped)
	}
	assert.Equal(t, 1, stomps)
	assert.Equal(t, 0, e.Life)
	assert.Equal(t, 1, p.Life)
	assert.Greater(t, p.Speed.Y, 0.0)
}

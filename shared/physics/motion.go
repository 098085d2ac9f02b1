package physics

import (
	"math"

	"github.com/automoto/blockhop/shared/gamemath"
)

// Move applies held horizontal input. Holding both directions cancels all
// horizontal motion; a direction blocked by a wall is ignored.
func (a *Actor) Move(left, right bool, st Step) {
	if left && right {
		a.Speed.X = 0
		a.PeakSpeed = 0
		a.SecondsMovingLeft = 0
		a.SecondsMovingRight = 0
		return
	}

	switch {
	case left && a.CanMoveLeft:
		if a.Horizontal != DirectionLeft {
			a.Horizontal = DirectionLeft
			a.SecondsMovingLeft = 0
			a.Speed.X = 0
			a.PeakSpeed = 0
		}
		a.Speed.X = -a.accelerate(a.SecondsMovingLeft, st)
		a.SecondsMovingLeft += st.DT
		a.PeakSpeed = a.Speed.X
	case right && a.CanMoveRight:
		if a.Horizontal != DirectionRight {
			a.Horizontal = DirectionRight
			a.SecondsMovingRight = 0
			a.Speed.X = 0
			a.PeakSpeed = 0
		}
		a.Speed.X = a.accelerate(a.SecondsMovingRight, st)
		a.SecondsMovingRight += st.DT
		a.PeakSpeed = a.Speed.X
	}
}

// accelerate returns the unsigned speed after t seconds of held input.
func (a *Actor) accelerate(t float64, st Step) float64 {
	scale := st.SizeRatio.X * st.Scale
	v := gamemath.EaseInShaped(a.tuning.MaxHorizontalSpeed, t, a.tuning.SecondsToMaxHorizontalSpeed, a.tuning.EaseShape)
	return gamemath.ClampSpeed(v*scale, math.Abs(a.tuning.MaxHorizontalSpeed*scale))
}

// slowDown decays horizontal speed from the value it had when input stopped.
func (a *Actor) slowDown(dt float64) {
	a.SecondsMovingLeft = 0
	a.SecondsMovingRight = 0
	if a.Horizontal == DirectionNone {
		return
	}

	a.Speed.X = gamemath.Decay(a.PeakSpeed, a.SecondsStopping, a.tuning.SecondsToStop)
	a.SecondsStopping += dt
	if math.Abs(a.Speed.X) < a.tuning.StopEpsilon {
		a.Speed.X = 0
		a.SecondsStopping = 0
		a.Horizontal = DirectionNone
	}
}

// Fall adds gravity for the time spent airborne so far.
func (a *Actor) Fall(st Step) {
	gravity := -a.tuning.Gravity * a.tuning.Weight
	a.Speed.Y += gamemath.FallSpeed(gravity, a.SecondsFalling) * st.SizeRatio.Y * st.Scale
	if limit := a.tuning.TerminalFallSpeed * st.SizeRatio.Y * st.Scale; limit > 0 && a.Speed.Y < -limit {
		a.Speed.Y = -limit
	}
	a.SecondsFalling += st.DT
}

func (a *Actor) land() {
	a.Jumping = false
	a.Speed.Y = 0
	a.SecondsFalling = 0
}

// Jump launches a grounded actor. A positive impulse overrides the one
// derived from the tuning.
func (a *Actor) Jump(impulse float64, st Step) {
	if !a.OnGround || a.Jumping {
		return
	}
	if impulse <= 0 {
		impulse = gamemath.JumpImpulse(a.tuning.JumpStrength, a.tuning.Weight)
	}
	a.Jumping = true
	a.OnGround = false
	a.Speed.Y += impulse * st.SizeRatio.Y * st.Scale
}

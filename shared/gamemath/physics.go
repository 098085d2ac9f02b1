// Package gamemath holds the pure math used by the actor simulation.
// Nothing in here keeps state; every function is safe to call from tests
// without a world.
package gamemath

import "math"

// DefaultEaseShape is the tanh steepness used by EaseIn when a tuning does
// not override it.
const DefaultEaseShape = 2.0

// EaseIn returns the horizontal speed after t seconds of held input.
// The curve rises quickly and flattens toward maxSpeed without reaching it.
func EaseIn(maxSpeed, t, timeToMax float64) float64 {
	return EaseInShaped(maxSpeed, t, timeToMax, DefaultEaseShape)
}

// EaseInShaped is EaseIn with an explicit steepness k.
func EaseInShaped(maxSpeed, t, timeToMax, k float64) float64 {
	if timeToMax == 0 {
		return 0
	}
	return maxSpeed * math.Tanh(k*t/timeToMax)
}

// Decay returns the speed t seconds after input was released at peak.
func Decay(peak, t, timeToStop float64) float64 {
	if timeToStop == 0 {
		return 0
	}
	return peak * math.Exp(-t/timeToStop)
}

// JumpImpulse is the instantaneous vertical speed gained from a jump.
func JumpImpulse(force, mass float64) float64 {
	if mass == 0 {
		return 0
	}
	return force / mass
}

// FallSpeed is the vertical speed contribution after t seconds airborne.
// gravity is negative for a downward pull.
func FallSpeed(gravity, t float64) float64 {
	return gravity * t
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Round rounds half away from zero. Positions are committed through it.
func Round(v float64) float64 {
	return math.Round(v)
}

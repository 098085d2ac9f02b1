// Package physics simulates platformer actors against tile geometry and
// against each other. World space is y-up: pos is the bottom-left corner of
// a body in pixels, and width/height are in tiles.
package physics

import (
	"github.com/automoto/blockhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Tuning holds the constants that drive an actor's motion curves.
// A Tuning is copied into each actor at construction and never changed.
type Tuning struct {
	Weight                      float64 `yaml:"weight"`
	JumpStrength                float64 `yaml:"jump_strength"`
	MaxHorizontalSpeed          float64 `yaml:"max_horizontal_speed"`
	Gravity                     float64 `yaml:"gravity"` // magnitude, pulled downward
	FallbackSpeed               float64 `yaml:"fallback_speed"`
	SecondsToMaxHorizontalSpeed float64 `yaml:"seconds_to_max_horizontal_speed"`
	SecondsToStop               float64 `yaml:"seconds_to_stop"`
	RecoveryTime                float64 `yaml:"recovery_time"`
	EaseShape                   float64 `yaml:"ease_shape"`
	StopEpsilon                 float64 `yaml:"stop_epsilon"`
	CrouchRatio                 float64 `yaml:"crouch_ratio"`
	CeilingDamping              float64 `yaml:"ceiling_damping"`
	TerminalFallSpeed           float64 `yaml:"terminal_fall_speed"` // 0 disables the clamp
	Life                        int     `yaml:"life"`
}

// DefaultPlayerTuning returns the stock player constants.
func DefaultPlayerTuning() Tuning {
	return Tuning{
		Weight:                      1,
		JumpStrength:                10,
		MaxHorizontalSpeed:          6,
		Gravity:                     5,
		FallbackSpeed:               6,
		SecondsToMaxHorizontalSpeed: 0.5,
		SecondsToStop:               0.1,
		RecoveryTime:                0.5,
		EaseShape:                   gamemath.DefaultEaseShape,
		StopEpsilon:                 0.01,
		CrouchRatio:                 2.0 / 3.0,
		CeilingDamping:              1.5,
		Life:                        1,
	}
}

// DefaultEnemyTuning returns the stock enemy constants. Enemies only fall,
// so most of the horizontal fields are unused.
func DefaultEnemyTuning() Tuning {
	t := DefaultPlayerTuning()
	t.JumpStrength = 0
	return t
}

// Kind tells the player and enemy variants apart.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) IsPlayer() bool { return k == KindPlayer }

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// Direction is the last intentional direction on one axis.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

// Input is the pressed state of the movement keys for one tick.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
	Reset  bool
}

// ContactMode selects how the static resolver combines several contacts
// on the same tick.
type ContactMode int

const (
	// ContactLastWriter lets the last overlapping object in list order
	// decide the snapped position.
	ContactLastWriter ContactMode = iota
	// ContactNearest keeps the most restrictive snap per side, independent
	// of list order.
	ContactNearest
)

// Step carries the per-tick parameters shared by every actor.
type Step struct {
	DT        float64
	SizeRatio dmath.Vec2 // window-scale compensation
	Scale     float64
	Tile      dmath.Vec2 // tile size in pixels
	Mode      ContactMode
}

// NewStep returns a step with unit size ratio and scale.
func NewStep(dt float64, tile dmath.Vec2) Step {
	return Step{
		DT:        dt,
		SizeRatio: dmath.Vec2{X: 1, Y: 1},
		Scale:     1,
		Tile:      tile,
	}
}

package core

import (
	"github.com/automoto/blockhop/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// DeathCause says why an actor left the world.
type DeathCause int

const (
	CauseStomped DeathCause = iota
	CauseHit
	CauseFell
	CauseManual // reset requested by the player or the scene
)

func (c DeathCause) String() string {
	switch c {
	case CauseStomped:
		return "stomped"
	case CauseHit:
		return "hit"
	case CauseFell:
		return "fell"
	case CauseManual:
		return "manual"
	}
	return "unknown"
}

type ScrollEvent struct {
	Scroll physics.Scroll
	Origin dmath.Vec2 // origin before the scroll is applied
}

type BoxEvent struct {
	Entry *donburi.Entry
	Box   *physics.StaticObject
}

type DeathEvent struct {
	Kind  physics.Kind
	Pos   dmath.Vec2
	Cause DeathCause
}

type ResetEvent struct {
	Level  string
	Resets int
	Cause  DeathCause
}

// Events are published during Update and delivered before it returns.
// Entries carried by an event may already be gone when a reset happened
// later in the same tick.
var (
	CameraScrolled = events.NewEventType[ScrollEvent]()
	BoxBroken      = events.NewEventType[BoxEvent]()
	ActorDied      = events.NewEventType[DeathEvent]()
	WorldReset     = events.NewEventType[ResetEvent]()
)

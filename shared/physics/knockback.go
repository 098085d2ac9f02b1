package physics

import dmath "github.com/yohamta/donburi/features/math"

// swept is the rectangle covering the actor after its unrounded speed.
func (a *Actor) swept(tile dmath.Vec2) Rect {
	r := a.Rect(tile)
	r.X += a.Speed.X
	r.Y += a.Speed.Y
	return r
}

// ResolveActors runs contact damage for subject against others. Landing on
// top of another actor stomps it: the subject bounces and the other loses a
// life. Any other contact knocks the subject back and starts its recovery
// window. Off-screen and dead actors are skipped.
func ResolveActors(subject *Actor, others []*Actor, tile dmath.Vec2) (stomped []*Actor, hit bool) {
	for _, o := range others {
		if o == nil || o == subject || !o.OnScreen || !o.Alive() {
			continue
		}
		s, t := subject.swept(tile), o.swept(tile)
		if !(s.Left() <= t.Right() && s.Right() >= t.Left() &&
			s.Bottom() <= t.Top() && s.Top() >= t.Bottom()) {
			continue
		}

		cur, other := subject.Rect(tile), o.Rect(tile)
		if cur.Bottom() >= other.Top() {
			subject.Pos.Y = other.Top()
			subject.SecondsFalling = 0
			subject.MovementSpeed.Y = 0
			subject.Speed.Y = subject.tuning.FallbackSpeed
			o.Life--
			stomped = append(stomped, o)
			continue
		}

		subject.knockBack(cur, other)
		hit = true
	}
	return stomped, hit
}

func (a *Actor) knockBack(cur, other Rect) {
	a.Controllable = false
	if a.IsPlayer() {
		a.Life--
	}
	a.SecondsMovingLeft = 0
	a.SecondsMovingRight = 0
	a.SecondsStopping = 0
	a.SecondsFalling = 0
	a.SecondsRecovering = 0
	a.MovementSpeed = dmath.Vec2{}

	fallback := a.tuning.FallbackSpeed
	switch {
	case cur.Top() <= other.Bottom():
		a.Pos.Y = other.Bottom() - cur.H
		a.Speed.Y = -fallback
	case cur.Right() <= other.Left():
		a.Pos.X = other.Left() - cur.W
		a.Speed.Y = fallback
	case cur.Left() >= other.Right():
		a.Pos.X = other.Right()
		a.Speed.Y = fallback
	}

	switch a.Horizontal {
	case DirectionLeft:
		a.Speed.X = fallback
	case DirectionRight:
		a.Speed.X = -fallback
	default:
		a.Horizontal = DirectionLeft
		a.Speed.X = -fallback
	}
	a.PeakSpeed = a.Speed.X
}

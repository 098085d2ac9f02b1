package physics

import (
	"math"

	"github.com/automoto/blockhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is the snapshot of an actor the static resolver works from.
type Body struct {
	Kind       Kind
	Pos        dmath.Vec2
	Speed      dmath.Vec2
	Width      float64
	Height     float64
	FullHeight float64
	Crouched   bool
	Jumping    bool
}

// Resolution is the outcome of one static collision pass.
type Resolution struct {
	Pos         dmath.Vec2
	Flags       Flags
	StopX       bool // zero horizontal movement this tick
	StopY       bool // zero vertical movement this tick
	CeilingHits int
	Activated   []*StaticObject // boxes landed on while jumping
}

type side int

const (
	sideNone side = iota
	sideAbove
	sideBelow
	sideLeft
	sideRight
)

// classify places cur relative to o. Earlier cases win when more than one
// holds.
func classify(cur, o Rect) side {
	switch {
	case cur.Bottom() >= o.Top():
		return sideAbove
	case cur.Top() <= o.Bottom():
		return sideBelow
	case cur.Right() <= o.Left():
		return sideLeft
	case cur.Left() >= o.Right():
		return sideRight
	}
	return sideNone
}

// snaps collects the candidate positions for ContactNearest.
type snaps struct {
	above, below, left, right             float64
	hasAbove, hasBelow, hasLeft, hasRight bool
}

func (s *snaps) add(sd side, v float64) {
	switch sd {
	case sideAbove:
		if !s.hasAbove || v > s.above {
			s.above = v
		}
		s.hasAbove = true
	case sideBelow:
		if !s.hasBelow || v < s.below {
			s.below = v
		}
		s.hasBelow = true
	case sideLeft:
		if !s.hasLeft || v < s.left {
			s.left = v
		}
		s.hasLeft = true
	case sideRight:
		if !s.hasRight || v > s.right {
			s.right = v
		}
		s.hasRight = true
	}
}

// apply writes the chosen snaps into pos. When both sides of an axis were
// hit the one closer to the starting position wins.
func (s *snaps) apply(pos dmath.Vec2) dmath.Vec2 {
	out := pos
	switch {
	case s.hasAbove && s.hasBelow:
		out.Y = closer(pos.Y, s.above, s.below)
	case s.hasAbove:
		out.Y = s.above
	case s.hasBelow:
		out.Y = s.below
	}
	switch {
	case s.hasLeft && s.hasRight:
		out.X = closer(pos.X, s.left, s.right)
	case s.hasLeft:
		out.X = s.left
	case s.hasRight:
		out.X = s.right
	}
	return out
}

func closer(from, a, b float64) float64 {
	if math.Abs(a-from) <= math.Abs(b-from) {
		return a
	}
	return b
}

// ResolveStatic clips a body's tentative movement against level geometry.
// Overlap is tested at the position the body would reach with its rounded
// speed, while the contact side is read from where it stands now. Objects
// that are not on screen are ignored. The body itself is not modified.
func ResolveStatic(b Body, statics []*StaticObject, tile dmath.Vec2, mode ContactMode) Resolution {
	res := Resolution{Pos: b.Pos, Flags: openFlags(b.Jumping)}

	cur := Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Width * tile.X, H: b.Height * tile.Y}
	tent := cur
	tent.X += gamemath.Round(b.Speed.X)
	tent.Y += gamemath.Round(b.Speed.Y)
	fullTop := b.Pos.Y + b.FullHeight*tile.Y

	var nearest snaps
	for _, s := range statics {
		if s == nil || !s.OnScreen {
			continue
		}
		o := s.Rect(tile)

		// overlap on x is strict, on y inclusive so resting contact counts
		if !(tent.Left() < o.Right() && tent.Right() > o.Left()) {
			continue
		}
		if b.Crouched && cur.Top() <= o.Bottom() {
			fits := fullTop <= o.Bottom()
			if mode == ContactNearest {
				res.Flags.CanUncrouch = res.Flags.CanUncrouch && fits
			} else {
				res.Flags.CanUncrouch = fits
			}
		}
		if !(tent.Bottom() <= o.Top() && tent.Top() >= o.Bottom()) {
			continue
		}

		sd := classify(cur, o)
		var snap float64
		switch sd {
		case sideAbove:
			res.Flags.OnGround = true
			res.StopY = true
			snap = o.Top()
			if b.Kind.IsPlayer() && s.Kind == StaticBox && b.Jumping {
				res.Activated = append(res.Activated, s)
			}
		case sideBelow:
			res.Flags.CanMoveUp = false
			res.Flags.Jumping = false
			res.StopY = true
			res.CeilingHits++
			snap = o.Bottom() - cur.H
		case sideLeft:
			res.Flags.CanMoveRight = false
			res.StopX = true
			snap = o.Left() - cur.W
		case sideRight:
			res.Flags.CanMoveLeft = false
			res.StopX = true
			snap = o.Right()
		default:
			continue
		}

		if mode == ContactNearest {
			nearest.add(sd, snap)
			continue
		}
		if sd == sideAbove || sd == sideBelow {
			res.Pos.Y = snap
		} else {
			res.Pos.X = snap
		}
	}

	if mode == ContactNearest {
		res.Pos = nearest.apply(b.Pos)
	}
	return res
}

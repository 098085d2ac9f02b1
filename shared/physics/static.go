package physics

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in pixels, anchored bottom-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y }
func (r Rect) Top() float64    { return r.Y + r.H }

// StaticKind identifies the tile geometry variants.
type StaticKind int

const (
	StaticGround StaticKind = iota
	StaticPlatform
	StaticBox
)

func (k StaticKind) String() string {
	switch k {
	case StaticGround:
		return "ground"
	case StaticPlatform:
		return "platform"
	case StaticBox:
		return "box"
	}
	return "unknown"
}

// StaticObject is a block of level geometry. Pos is in pixels, Width and
// Height are in tiles.
type StaticObject struct {
	Kind     StaticKind
	Pos      dmath.Vec2
	Width    float64
	Height   float64
	OnScreen bool

	broken bool
}

func NewStatic(kind StaticKind, pos dmath.Vec2, width, height float64) *StaticObject {
	return &StaticObject{
		Kind:     kind,
		Pos:      pos,
		Width:    width,
		Height:   height,
		OnScreen: true,
	}
}

// Rect returns the pixel rectangle for the given tile size.
func (s *StaticObject) Rect(tile dmath.Vec2) Rect {
	return Rect{X: s.Pos.X, Y: s.Pos.Y, W: s.Width * tile.X, H: s.Height * tile.Y}
}

// Broken reports whether a box has been activated.
func (s *StaticObject) Broken() bool { return s.broken }

// Activate breaks a box. It returns true only on the call that flipped the
// state; non-box objects never break.
func (s *StaticObject) Activate() bool {
	if s.Kind != StaticBox || s.broken {
		return false
	}
	s.broken = true
	return true
}

package physics

import (
	"math"

	"github.com/automoto/blockhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// CameraBounds is a follow box in tiles.
type CameraBounds struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

func DefaultCameraBounds() CameraBounds {
	return CameraBounds{Left: 8, Right: 28, Bottom: 2, Top: 22}
}

// FitHeight moves the box down until its top edge lies within a view of the
// given height in pixels, keeping its size where the view allows. ok
// reports whether the bounds changed.
func (b CameraBounds) FitHeight(view float64, tile dmath.Vec2, scale float64) (CameraBounds, bool) {
	if scale <= 0 {
		scale = 1
	}
	if tile.Y <= 0 || view <= 0 {
		return b, false
	}
	limit := math.Floor(view * scale / tile.Y)
	if b.Top <= limit {
		return b, false
	}
	excess := b.Top - limit
	b.Top = limit
	b.Bottom = math.Max(b.Bottom-excess, 0)
	if b.Bottom >= b.Top {
		b.Bottom = 0
	}
	return b, true
}

// Scroll is a pending view shift in pixels.
type Scroll struct {
	DX, DY int
}

func (s Scroll) IsZero() bool { return s.DX == 0 && s.DY == 0 }

// Camera keeps a follow box around the player. It never moves itself:
// Check reports the shift and the owner applies it with Move.
type Camera struct {
	XMin, XMax int
	YMin, YMax int

	initial CameraBounds
	tile    dmath.Vec2
	scale   float64
}

func NewCamera(bounds CameraBounds, tile dmath.Vec2, scale float64) *Camera {
	if scale <= 0 {
		scale = 1
	}
	c := &Camera{initial: bounds, tile: tile, scale: scale}
	c.Reset()
	return c
}

// Reset restores the box to its construction-time placement.
func (c *Camera) Reset() {
	c.XMin = int(c.initial.Left * c.tile.X / c.scale)
	c.XMax = int(c.initial.Right * c.tile.X / c.scale)
	c.YMin = int(c.initial.Bottom * c.tile.Y / c.scale)
	c.YMax = int(c.initial.Top * c.tile.Y / c.scale)
}

// floor is the unscrolled lower-left corner of the box. The box never
// scrolls past it.
func (c *Camera) floor() (float64, float64) {
	return float64(int(c.initial.Left * c.tile.X / c.scale)),
		float64(int(c.initial.Bottom * c.tile.Y / c.scale))
}

// Check compares the body's next position with the box and returns the
// smallest shift that brings it back inside. ok is false when no shift is
// needed.
func (c *Camera) Check(pos, speed dmath.Vec2, width, height float64) (s Scroll, ok bool) {
	x := pos.X + gamemath.Round(speed.X)
	y := pos.Y + gamemath.Round(speed.Y)
	w := width * c.tile.X
	h := height * c.tile.Y
	floorX, floorY := c.floor()

	var dx, dy float64
	if floorX < x && x < float64(c.XMin) {
		dx = x - float64(c.XMin)
	} else if x+w > float64(c.XMax) {
		dx = x + w - float64(c.XMax)
	}
	if floorY < y && y < float64(c.YMin) {
		dy = y - float64(c.YMin)
	} else if y+h > float64(c.YMax) {
		dy = y + h - float64(c.YMax)
	}

	s = Scroll{DX: int(math.Round(dx)), DY: int(math.Round(dy))}
	return s, !s.IsZero()
}

// Move shifts the box by s.
func (c *Camera) Move(s Scroll) {
	c.XMin += s.DX
	c.XMax += s.DX
	c.YMin += s.DY
	c.YMax += s.DY
}

// Resize rescales the box for a new tile size, keeping its size in tiles.
func (c *Camera) Resize(tile dmath.Vec2) {
	if c.tile.X == 0 || c.tile.Y == 0 {
		c.tile = tile
		c.Reset()
		return
	}
	rx, ry := tile.X/c.tile.X, tile.Y/c.tile.Y
	c.XMin = int(float64(c.XMin) * rx)
	c.XMax = int(float64(c.XMax) * rx)
	c.YMin = int(float64(c.YMin) * ry)
	c.YMax = int(float64(c.YMax) * ry)
	c.tile = tile
}

// Tile is the tile size the box is measured in.
func (c *Camera) Tile() dmath.Vec2 { return c.tile }

// Box returns the follow box as a pixel rectangle.
func (c *Camera) Box() Rect {
	return Rect{
		X: float64(c.XMin),
		Y: float64(c.YMin),
		W: float64(c.XMax - c.XMin),
		H: float64(c.YMax - c.YMin),
	}
}

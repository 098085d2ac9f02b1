package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	assert.Equal(t, 256, c.XMin)
	assert.Equal(t, 896, c.XMax)
	assert.Equal(t, 64, c.YMin)
	assert.Equal(t, 704, c.YMax)
	assert.Equal(t, Rect{X: 256, Y: 64, W: 640, H: 640}, c.Box())
}

func TestCameraInsideBoxIsQuiet(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	_, ok := c.Check(dmath.Vec2{X: 400, Y: 300}, dmath.Vec2{X: 3, Y: -2}, 1, 2)
	assert.False(t, ok)
}

func TestCameraScrollsRight(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	pos := dmath.Vec2{X: float64(c.XMax) - tile.X + 1, Y: 300}

	s, ok := c.Check(pos, dmath.Vec2{}, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, Scroll{DX: 1}, s)

	c.Move(s)
	assert.Equal(t, 897, c.XMax)
	assert.Equal(t, 257, c.XMin)
	_, ok = c.Check(pos, dmath.Vec2{}, 1, 2)
	assert.False(t, ok)
}

func TestCameraUsesRoundedSpeed(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	pos := dmath.Vec2{X: float64(c.XMax) - tile.X - 2, Y: 300}

	s, ok := c.Check(pos, dmath.Vec2{X: 4.6}, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, 3, s.DX)
}

func TestCameraScrollsUp(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	s, ok := c.Check(dmath.Vec2{X: 400, Y: 660}, dmath.Vec2{}, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, Scroll{DY: 20}, s)
}

func TestCameraNeverScrollsBelowStart(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)

	_, ok := c.Check(dmath.Vec2{X: 10, Y: 10}, dmath.Vec2{}, 1, 2)
	assert.False(t, ok, "left of the unscrolled box")

	c.Move(Scroll{DX: 100, DY: 50})
	s, ok := c.Check(dmath.Vec2{X: 300, Y: 100}, dmath.Vec2{}, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, Scroll{DX: -56, DY: -14}, s)
	c.Move(s)
	assert.Equal(t, 300, c.XMin)
	assert.Equal(t, 100, c.YMin)

	_, ok = c.Check(dmath.Vec2{X: 200, Y: 50}, dmath.Vec2{}, 1, 2)
	assert.False(t, ok)
}

func TestCameraReset(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	c.Move(Scroll{DX: 40, DY: -3})
	c.Reset()
	assert.Equal(t, 256, c.XMin)
	assert.Equal(t, 64, c.YMin)
}

func TestCameraResizeKeepsTileSize(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	c.Move(Scroll{DX: 32})
	c.Resize(dmath.Vec2{X: 64, Y: 64})

	assert.Equal(t, 576, c.XMin)
	assert.Equal(t, 1856, c.XMax)
	assert.Equal(t, 20*64, c.XMax-c.XMin)
	assert.Equal(t, 20*64, c.YMax-c.YMin)
	assert.Equal(t, dmath.Vec2{X: 64, Y: 64}, c.Tile())
}

func TestCameraScale(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 2)
	assert.Equal(t, 128, c.XMin)
	assert.Equal(t, 448, c.XMax)
}

func TestCameraDefaultsFitCanvas(t *testing.T) {
	c := NewCamera(DefaultCameraBounds(), tile, 1)
	assert.LessOrEqual(t, c.YMax, 720)

	_, changed := DefaultCameraBounds().FitHeight(720, tile, 1)
	assert.False(t, changed)
}

func TestCameraBoundsFitHeight(t *testing.T) {
	tests := []struct {
		name    string
		in      CameraBounds
		view    float64
		want    CameraBounds
		changed bool
	}{
		{"fits", CameraBounds{Left: 8, Right: 28, Bottom: 2, Top: 22}, 720, CameraBounds{Left: 8, Right: 28, Bottom: 2, Top: 22}, false},
		{"shifted down", CameraBounds{Left: 8, Right: 28, Bottom: 4, Top: 24}, 720, CameraBounds{Left: 8, Right: 28, Bottom: 2, Top: 22}, true},
		{"bottom pinned", CameraBounds{Left: 8, Right: 28, Bottom: 1, Top: 24}, 720, CameraBounds{Left: 8, Right: 28, Bottom: 0, Top: 22}, true},
		{"view too small", CameraBounds{Left: 8, Right: 28, Bottom: 4, Top: 24}, 64, CameraBounds{Left: 8, Right: 28, Bottom: 0, Top: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.in.FitHeight(tt.view, tile, 1)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

package core

import (
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/physics"
	dmath "github.com/yohamta/donburi/features/math"
)

// Settings is a snapshot of everything the world needs from configuration.
// The world copies it on New and never reads the config globals again.
type Settings struct {
	Canvas        dmath.Vec2 // logical view size in pixels
	Tile          dmath.Vec2 // tile size in pixels
	Scale         float64
	FallThreshold float64 // the player resets once its top drops below this y
	Mode          physics.ContactMode
	FixedStep     float64 // seconds per tick, 0 uses the dt passed to Update
	Player        physics.Tuning
	Enemy         physics.Tuning
	Camera        physics.CameraBounds
}

// SettingsFromConfig snapshots the config globals.
func SettingsFromConfig() Settings {
	s := Settings{
		Canvas:        dmath.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)},
		Tile:          dmath.Vec2{X: cfg.World.TileWidth, Y: cfg.World.TileHeight},
		Scale:         cfg.World.Scale,
		FallThreshold: cfg.World.FallThreshold,
		Mode:          cfg.World.Mode(),
		Player:        cfg.Player,
		Enemy:         cfg.Enemy,
		Camera:        cfg.Camera,
	}
	if cfg.World.FixedStep && cfg.C.TPS > 0 {
		s.FixedStep = 1 / float64(cfg.C.TPS)
	}
	return s
}

// DefaultSettings returns the built-in tuning on a 1280x720 canvas with
// 32 pixel tiles.
func DefaultSettings() Settings {
	return Settings{
		Canvas:    dmath.Vec2{X: 1280, Y: 720},
		Tile:      dmath.Vec2{X: 32, Y: 32},
		Scale:     1,
		Mode:      physics.ContactLastWriter,
		FixedStep: 1.0 / 60,
		Player:    physics.DefaultPlayerTuning(),
		Enemy:     physics.DefaultEnemyTuning(),
		Camera:    physics.DefaultCameraBounds(),
	}
}

// fitCamera keeps the follow box inside the canvas so a player touching
// its top edge is still drawn.
func (s Settings) fitCamera() (Settings, bool) {
	var ok bool
	s.Camera, ok = s.Camera.FitHeight(s.Canvas.Y, s.Tile, s.Scale)
	return s, ok
}

func (s Settings) normalized() Settings {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	if s.Tile.X <= 0 || s.Tile.Y <= 0 {
		s.Tile = dmath.Vec2{X: 32, Y: 32}
	}
	return s
}

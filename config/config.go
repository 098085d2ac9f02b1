package config

import (
	"image/color"

	"github.com/automoto/blockhop/shared/physics"
)

// Config holds window and general game configuration
type Config struct {
	Width     int    `yaml:"width"`  // logical canvas width in pixels
	Height    int    `yaml:"height"` // logical canvas height in pixels
	TPS       int    `yaml:"tps"`    // simulation ticks per second
	Title     string `yaml:"title"`
	LevelsDir string `yaml:"levels_dir"` // extra directory of *.lvl files
}

// WorldConfig contains tile and simulation settings
type WorldConfig struct {
	TileWidth     float64 `yaml:"tile_width"`
	TileHeight    float64 `yaml:"tile_height"`
	Scale         float64 `yaml:"scale"`
	FallThreshold float64 `yaml:"fall_threshold"` // player top below this y resets the world
	ContactMode   string  `yaml:"contact_mode"`   // "last-writer" or "nearest"
	FixedStep     bool    `yaml:"fixed_step"`     // feed 1/TPS instead of measured frame time
}

// EditorConfig contains level editor settings
type EditorConfig struct {
	GridWidth   int    `yaml:"grid_width"`  // cells
	GridHeight  int    `yaml:"grid_height"` // cells
	CellSize    int    `yaml:"cell_size"`   // pixels per cell on screen
	ScrollSpeed int    `yaml:"scroll_speed"`
	SaveDir     string `yaml:"save_dir"`
	FilePrefix  string `yaml:"file_prefix"` // newWorldN.lvl
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Enabled   bool   `yaml:"enabled"`    // start with the debug overlay on
	SkipMenu  bool   `yaml:"skip_menu"`  // go straight into the first level
	StatsAddr string `yaml:"stats_addr"` // runtime stats viewer, empty disables
}

// MenuConfig contains title menu layout
type MenuConfig struct {
	TitleY         float64
	MenuStartY     float64
	MenuItemHeight float64
	MenuItemGap    float64
}

// TelemetryConfig contains crash reporting settings
type TelemetryConfig struct {
	SentryDSN   string `yaml:"sentry_dsn"`
	Environment string `yaml:"environment"`
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player physics.Tuning
var Enemy physics.Tuning
var Camera physics.CameraBounds
var Editor EditorConfig
var Debug DebugConfig
var Telemetry TelemetryConfig
var Menu MenuConfig

var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky         = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	GroundBrown = color.RGBA{R: 136, G: 84, B: 40, A: 255}
	GroundTop   = color.RGBA{R: 88, G: 176, B: 64, A: 255}
	Platform    = color.RGBA{R: 200, G: 160, B: 96, A: 255}
	BoxYellow   = color.RGBA{R: 240, G: 192, B: 48, A: 255}
	BoxBroken   = color.RGBA{R: 120, G: 96, B: 72, A: 255}
	PlayerBlue  = color.RGBA{R: 40, G: 80, B: 220, A: 255}
	EnemyRed    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Cyan        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	GridLine    = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	PanelGray   = color.RGBA{R: 40, G: 40, B: 40, A: 230}
	ButtonIdle  = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	ButtonHover = color.RGBA{R: 100, G: 100, B: 130, A: 255}
	ButtonPress = color.RGBA{R: 50, G: 50, B: 70, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "blockhop",
	}

	World = WorldConfig{
		TileWidth:     32,
		TileHeight:    32,
		Scale:         1,
		FallThreshold: 0, // bottom of the level
		ContactMode:   "last-writer",
		FixedStep:     true,
	}

	Player = physics.DefaultPlayerTuning()
	Enemy = physics.DefaultEnemyTuning()
	Camera = physics.DefaultCameraBounds()

	Editor = EditorConfig{
		GridWidth:   200,
		GridHeight:  50,
		CellSize:    24,
		ScrollSpeed: 8,
		SaveDir:     ".",
		FilePrefix:  "newWorld",
	}

	Debug = DebugConfig{}
	Telemetry = TelemetryConfig{Environment: "development"}

	Menu = MenuConfig{
		TitleY:         200,
		MenuStartY:     300,
		MenuItemHeight: 24,
		MenuItemGap:    16,
	}
}

// Mode maps the configured contact mode name to the resolver setting.
// Unknown names fall back to last-writer.
func (w WorldConfig) Mode() physics.ContactMode {
	if w.ContactMode == "nearest" {
		return physics.ContactNearest
	}
	return physics.ContactLastWriter
}

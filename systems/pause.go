package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause handles the pause toggle and the pause menu. Choosing
// anything but Resume is handed to onSelect after unpausing.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(onSelect func(components.PauseMenuOption)) ecs.System {
	return func(ecs *ecs.ECS) {
		input := GetInput(ecs)
		pause := GetOrCreatePause(ecs)

		if input.JustPressed(cfg.ActionPause) {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
			return
		}
		if !pause.IsPaused {
			return
		}

		n := components.PauseMenuOption(len(components.PauseMenuOptions))
		if input.JustPressed(cfg.ActionMenuUp) {
			pause.SelectedOption = (pause.SelectedOption - 1 + n) % n
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			pause.SelectedOption = (pause.SelectedOption + 1) % n
		}
		if input.JustPressed(cfg.ActionMenuSelect) {
			pause.IsPaused = false
			if pause.SelectedOption != components.MenuResume && onSelect != nil {
				onSelect(pause.SelectedOption)
			}
		}
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreatePause(ecs).IsPaused {
			return
		}
		system(ecs)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

func pauseLabel(o components.PauseMenuOption) string {
	switch o {
	case components.MenuResume:
		return "Resume"
	case components.MenuRestart:
		return "Restart Level"
	case components.MenuExit:
		return "Exit to Menu"
	}
	return ""
}

// DrawPause dims the screen and lists the pause menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.PanelGray, false)

	drawCentered(screen, "PAUSED", fonts.Title, width, height/2-60, cfg.White)
	for i, o := range components.PauseMenuOptions {
		c, label := cfg.White, pauseLabel(o)
		if o == pause.SelectedOption {
			c, label = cfg.BoxYellow, "> "+label+" <"
		}
		drawCentered(screen, label, fonts.Regular, width, height/2+i*28, c)
	}
}

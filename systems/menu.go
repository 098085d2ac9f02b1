package systems

import (
	"image/color"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system that hands the chosen option
// to onSelect.
func NewUpdateMenu(onSelect func(components.MainMenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			onSelect(menu.VisibleOptions[menu.SelectedIndex])
		}
		// Allow back/escape to exit
		if input.JustPressed(cfg.ActionPause) {
			onSelect(components.MainMenuExit)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	screen.Fill(cfg.Sky)

	drawCentered(screen, cfg.C.Title, fonts.Title, width, int(cfg.Menu.TitleY), cfg.White)

	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.White
		label := getOptionLabel(option)
		if i == menu.SelectedIndex {
			textColor = cfg.BoxYellow
			label = "> " + label + " <"
		}
		drawCentered(screen, label, fonts.Regular, width, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	drawCentered(screen, "Arrows: Navigate   Enter: Select   Esc: Quit", fonts.Small, width, height-12, cfg.White)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y int, c color.Color) {
	face := name.Get()
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-b.Dx())/2, y, c)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuEditor:
		return "Level Editor"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuEditor,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

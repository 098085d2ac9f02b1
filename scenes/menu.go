package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/blockhop/components"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *log.Logger
	levels       []*leveldata.Level
	once         sync.Once
}

// NewMenuScene creates a new menu scene; Play starts levels.
func NewMenuScene(sc SceneChanger, logger *log.Logger, levels []*leveldata.Level) *MenuScene {
	return &MenuScene{sceneChanger: sc, logger: logger, levels: levels}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) selected(option components.MainMenuOption) {
	switch option {
	case components.MainMenuPlay:
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.logger, ms.levels))
	case components.MainMenuEditor:
		ms.sceneChanger.ChangeScene(NewEditorScene(ms.sceneChanger, ms.logger, nil, ""))
	case components.MainMenuExit:
		os.Exit(0)
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.selected))

	ms.ecs.AddRenderer(systems.LayerDefault, systems.DrawMenu)
}

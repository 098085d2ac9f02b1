package scenes

import (
	"sync"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/core"
	"github.com/automoto/blockhop/fonts"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	world        *core.World
	sceneChanger SceneChanger
	logger       *log.Logger
	levels       []*leveldata.Level
	index        int
	once         sync.Once
	err          error

	// editor is returned to on OpenEditor when the scene is a play-test.
	editor *EditorScene
}

// NewPlatformerScene plays levels in order, starting at the first.
func NewPlatformerScene(sc SceneChanger, logger *log.Logger, levels []*leveldata.Level) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, logger: logger, levels: levels}
}

// newPlayTestScene plays a single level and returns to the editor.
func newPlayTestScene(editor *EditorScene, level *leveldata.Level) *PlatformerScene {
	ps := NewPlatformerScene(editor.sceneChanger, editor.logger, []*leveldata.Level{level})
	ps.editor = editor
	return ps
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return
	}
	ps.ecs.Update()
	if systems.GetOrCreatePause(ps.ecs).IsPaused {
		return
	}

	input := systems.GetInput(ps.ecs)
	switch {
	case input.JustPressed(cfg.ActionNextLevel):
		ps.nextLevel()
	case input.JustPressed(cfg.ActionOpenEditor):
		ps.openEditor()
	}
}

func (ps *PlatformerScene) pauseSelected(option components.PauseMenuOption) {
	switch option {
	case components.MenuRestart:
		ps.world.Reset()
	case components.MenuExit:
		if ps.editor != nil {
			ps.sceneChanger.ChangeScene(ps.editor)
			return
		}
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.logger, ps.levels))
	}
}

func (ps *PlatformerScene) nextLevel() {
	if len(ps.levels) < 2 {
		return
	}
	ps.index = (ps.index + 1) % len(ps.levels)
	if err := ps.world.ChangeLevel(ps.levels[ps.index]); err != nil {
		ps.logger.Error("could not change level", "error", err)
	}
}

func (ps *PlatformerScene) openEditor() {
	if ps.editor != nil {
		ps.sceneChanger.ChangeScene(ps.editor)
		return
	}
	ps.sceneChanger.ChangeScene(NewEditorScene(ps.sceneChanger, ps.logger, ps.world.Level().Clone(), ""))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	if ps.err != nil {
		text.Draw(screen, ps.err.Error(), fonts.Regular.Get(), 20, 40, cfg.White)
		return
	}
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.world = core.New(core.SettingsFromConfig(), ps.logger)
	if len(ps.levels) == 0 {
		ps.err = leveldata.ErrNoLevels
		ps.logger.Error("nothing to play", "error", ps.err)
		return
	}
	if err := ps.world.LoadLevel(ps.levels[ps.index]); err != nil {
		ps.err = err
		ps.logger.Error("could not load level", "error", err)
		return
	}

	ecs := ecs.NewECS(ps.world.Donburi())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(ps.pauseSelected))
	ecs.AddSystem(systems.UpdateDebugToggle)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateWorld(ps.world)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFlash))

	systems.SubscribeEffects(ps.world)

	// Add renderers
	ecs.AddRenderer(systems.LayerDefault, systems.NewDrawLevel(ps.world))
	ecs.AddRenderer(systems.LayerDefault, systems.NewDrawActors(ps.world))
	ecs.AddRenderer(systems.LayerOverlay, systems.NewDrawHUD(ps.world))
	ecs.AddRenderer(systems.LayerOverlay, systems.NewDrawDebug(ps.world))
	ecs.AddRenderer(systems.LayerOverlay, systems.DrawPause)

	ps.ecs = ecs
}

package scenes

import (
	"sync"

	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/systems"
	"github.com/automoto/blockhop/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type EditorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *log.Logger
	editor       *components.EditorData
	ui           *ui.EditorUI
	once         sync.Once

	level *leveldata.Level
	path  string
}

// NewEditorScene opens level for editing. A nil level starts an empty grid;
// path is where Save writes, empty for a new file.
func NewEditorScene(sc SceneChanger, logger *log.Logger, level *leveldata.Level, path string) *EditorScene {
	return &EditorScene{sceneChanger: sc, logger: logger, level: level, path: path}
}

func (es *EditorScene) Update() {
	es.once.Do(es.configure)
	es.ui.Update()
	es.ecs.Update()

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		es.save(false)
	}
}

func (es *EditorScene) Draw(screen *ebiten.Image) {
	if es.ecs == nil {
		screen.Fill(cfg.Black)
		return
	}
	es.ecs.Draw(screen)
	es.ui.Draw(screen)
}

func (es *EditorScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	es.editor = systems.CreateEditor(ecs, es.level, es.path)

	ecs.AddSystem(systems.UpdateEditor)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawEditor)

	es.ui = ui.NewEditorUI(es.editor, es.save, es.playTest, es.close)
	es.ecs = ecs
}

func (es *EditorScene) save(asNew bool) {
	path, err := systems.SaveEditor(es.editor, asNew)
	if err != nil {
		es.logger.Error("could not save level", "error", err)
		return
	}
	es.logger.Info("level saved", "path", path)
}

func (es *EditorScene) snapshot() *leveldata.Level {
	return es.editor.Grid.Level(es.editor.Name)
}

func (es *EditorScene) playTest() {
	level := es.snapshot()
	if _, ok := level.Player(); !ok {
		es.editor.Status = "place a player first"
		return
	}
	es.sceneChanger.ChangeScene(newPlayTestScene(es, level))
}

// close leaves the editor for the title menu over the built-in levels.
func (es *EditorScene) close() {
	levels, err := assets.Builtin()
	if err != nil {
		es.logger.Error("could not load levels", "error", err)
	}
	es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.logger, levels))
}

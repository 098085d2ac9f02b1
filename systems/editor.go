package systems

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/blockhop/archetypes"
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// EditorToolbarHeight is the strip at the top of the canvas the toolbar owns.
const EditorToolbarHeight = 44

// EditorTools lists the paintable kinds in toolbar order.
var EditorTools = []leveldata.Kind{
	leveldata.KindGround,
	leveldata.KindPlatform,
	leveldata.KindBox,
	leveldata.KindPlayer,
	leveldata.KindEnemy,
	leveldata.Empty,
}

var editorColors = map[leveldata.Kind]color.RGBA{
	leveldata.KindGround:   cfg.GroundBrown,
	leveldata.KindPlatform: cfg.Platform,
	leveldata.KindBox:      cfg.BoxYellow,
	leveldata.KindPlayer:   cfg.PlayerBlue,
	leveldata.KindEnemy:    cfg.EnemyRed,
}

// ToolName is the toolbar label of a kind.
func ToolName(k leveldata.Kind) string {
	switch k {
	case leveldata.KindGround:
		return "Ground"
	case leveldata.KindPlatform:
		return "Platform"
	case leveldata.KindBox:
		return "Box"
	case leveldata.KindPlayer:
		return "Player"
	case leveldata.KindEnemy:
		return "Enemy"
	case leveldata.Empty:
		return "Erase"
	}
	return k.String()
}

// CreateEditor opens l (nil for a blank grid) for editing.
func CreateEditor(e *ecs.ECS, l *leveldata.Level, path string) *components.EditorData {
	w, h := cfg.Editor.GridWidth, cfg.Editor.GridHeight
	grid := leveldata.NewGrid(w, h)
	name := "untitled"
	if l != nil {
		grid = leveldata.GridFromLevel(l, w, h)
		name = l.Name
	}
	cell := cfg.Editor.CellSize
	sum := grid.Level(name).Checksum()

	entry := archetypes.Editor.Spawn(e.World)
	components.Editor.SetValue(entry, components.EditorData{
		Grid:    grid,
		Tool:    leveldata.KindGround,
		Path:    path,
		Name:    name,
		Saved:   sum,
		Current: sum,
		Cells:   resolv.NewSpace(w*cell, h*cell, cell, cell),
	})
	return components.Editor.Get(entry)
}

// GetEditor returns the open editor state.
func GetEditor(e *ecs.ECS) (*components.EditorData, bool) {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Editor.Get(entry), true
}

// EditorCellAt maps a canvas position to the grid cell under it.
func EditorCellAt(ed *components.EditorData, mx, my, canvasHeight int) (x, y int, ok bool) {
	if my < EditorToolbarHeight {
		return 0, 0, false
	}
	cell := cfg.Editor.CellSize
	gx := float64(mx + ed.ViewX*cell)
	gy := float64(canvasHeight - 1 - my + ed.ViewY*cell)
	x, y = ed.Cells.WorldToSpace(gx, gy)
	if ed.Cells.Cell(x, y) == nil {
		return 0, 0, false
	}
	return x, y, true
}

func editorView() (cols, rows int) {
	cell := cfg.Editor.CellSize
	return cfg.C.Width / cell, (cfg.C.Height - EditorToolbarHeight) / cell
}

// scrollRepeat fires on press and then every other frame after a short hold.
func scrollRepeat(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 12 && d%max(cfg.Editor.ScrollSpeed/4, 1) == 0)
}

// UpdateEditor scrolls the view and paints under the mouse.
func UpdateEditor(e *ecs.ECS) {
	ed, ok := GetEditor(e)
	if !ok {
		return
	}

	cols, rows := editorView()
	if scrollRepeat(ebiten.KeyLeft) || scrollRepeat(ebiten.KeyA) {
		ed.ViewX--
	}
	if scrollRepeat(ebiten.KeyRight) || scrollRepeat(ebiten.KeyD) {
		ed.ViewX++
	}
	if scrollRepeat(ebiten.KeyUp) || scrollRepeat(ebiten.KeyW) {
		ed.ViewY++
	}
	if scrollRepeat(ebiten.KeyDown) || scrollRepeat(ebiten.KeyS) {
		ed.ViewY--
	}
	ed.ViewX = min(max(ed.ViewX, 0), max(ed.Grid.W-cols, 0))
	ed.ViewY = min(max(ed.ViewY, 0), max(ed.Grid.H-rows, 0))

	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6} {
		if inpututil.IsKeyJustPressed(k) {
			ed.Tool = EditorTools[i]
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y, ok := EditorCellAt(ed, mx, my, cfg.C.Height)
	if !ok {
		return
	}
	changed := false
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		changed = ed.Grid.Erase(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if ed.Tool == leveldata.Empty {
			changed = ed.Grid.Erase(x, y)
		} else {
			changed = ed.Grid.Paint(ed.Tool, x, y)
		}
	}
	if changed {
		ed.Current = ed.Grid.Level(ed.Name).Checksum()
	}
}

// SaveEditor writes the grid. An opened file is overwritten unless asNew
// is set; new files get the next free newWorldN.lvl name, next to the
// opened file when there is one.
func SaveEditor(ed *components.EditorData, asNew bool) (string, error) {
	path := ed.Path
	if path == "" || asNew {
		dir := cfg.Editor.SaveDir
		if ed.Path != "" {
			dir = filepath.Dir(ed.Path)
		}
		path = filepath.Join(dir, leveldata.NextName(os.DirFS(dir), cfg.Editor.FilePrefix))
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	level := ed.Grid.Level(name)
	if err := leveldata.SaveFile(path, level); err != nil {
		ed.Status = err.Error()
		return "", err
	}

	ed.Path = path
	ed.Name = name
	ed.Saved = level.Checksum()
	ed.Current = ed.Saved
	ed.Status = "saved " + path
	return path, nil
}

// DrawEditor renders the visible part of the grid.
func DrawEditor(e *ecs.ECS, screen *ebiten.Image) {
	ed, ok := GetEditor(e)
	if !ok {
		return
	}
	screen.Fill(cfg.Black)

	cell := cfg.Editor.CellSize
	cols, rows := editorView()
	height := screen.Bounds().Dy()
	toScreen := func(x, y int) (float32, float32) {
		return float32((x - ed.ViewX) * cell), float32(height - (y-ed.ViewY+1)*cell)
	}

	for y := ed.ViewY; y < ed.ViewY+rows && y < ed.Grid.H; y++ {
		for x := ed.ViewX; x < ed.ViewX+cols+1 && x < ed.Grid.W; x++ {
			c, ok := editorColors[ed.Grid.At(x, y)]
			if !ok {
				continue
			}
			sx, sy := toScreen(x, y)
			vector.FillRect(screen, sx, sy, float32(cell), float32(cell), c, false)
		}
	}

	for i := 0; i <= cols; i++ {
		vector.FillRect(screen, float32(i*cell), EditorToolbarHeight, 1, float32(height-EditorToolbarHeight), cfg.GridLine, false)
	}
	for j := 0; j <= rows; j++ {
		vector.FillRect(screen, 0, float32(height-j*cell), float32(screen.Bounds().Dx()), 1, cfg.GridLine, false)
	}

	mx, my := ebiten.CursorPosition()
	if x, y, ok := EditorCellAt(ed, mx, my, height); ok {
		sx, sy := toScreen(x, y)
		vector.StrokeRect(screen, sx, sy, float32(cell), float32(cell), 2, cfg.White, false)
	}
}

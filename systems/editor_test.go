package systems

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestEditorCellAt(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ed := CreateEditor(e, nil, "")
	cell := cfg.Editor.CellSize
	h := 720

	x, y, ok := EditorCellAt(ed, 0, h-1, h)
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, ok = EditorCellAt(ed, cell*3+1, h-1-cell, h)
	require.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	ed.ViewX, ed.ViewY = 10, 2
	x, y, ok = EditorCellAt(ed, 0, h-1, h)
	require.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 2, y)

	_, _, ok = EditorCellAt(ed, 0, EditorToolbarHeight-1, h)
	assert.False(t, ok, "toolbar is not part of the grid")

	ed.ViewX = ed.Grid.W
	_, _, ok = EditorCellAt(ed, 0, h-1, h)
	assert.False(t, ok, "past the right edge of the grid")
}

func TestCreateEditorFromLevel(t *testing.T) {
	l, err := leveldata.ParseString("g 3 1 0 0\nP 1 2 1 1\n")
	require.NoError(t, err)
	l.Name = "opened"

	e := ecs.NewECS(donburi.NewWorld())
	ed := CreateEditor(e, l, "opened.lvl")

	assert.Equal(t, leveldata.KindGround, ed.Grid.At(2, 0))
	assert.Equal(t, leveldata.KindPlayer, ed.Grid.At(1, 2))
	assert.Equal(t, "opened", ed.Name)
	assert.False(t, ed.Dirty())

	got, ok := GetEditor(e)
	require.True(t, ok)
	assert.Same(t, ed, got)
}

func TestSaveEditor(t *testing.T) {
	dir := t.TempDir()
	prev := cfg.Editor.SaveDir
	cfg.Editor.SaveDir = dir
	t.Cleanup(func() { cfg.Editor.SaveDir = prev })

	e := ecs.NewECS(donburi.NewWorld())
	ed := CreateEditor(e, nil, "")
	require.True(t, ed.Grid.Paint(leveldata.KindGround, 0, 0))
	ed.Current = ed.Grid.Level(ed.Name).Checksum()
	require.True(t, ed.Dirty())

	p, err := SaveEditor(ed, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newWorld1.lvl"), p)
	assert.False(t, ed.Dirty())
	assert.Equal(t, "newWorld1", ed.Name)

	saved, err := leveldata.LoadFile(os.DirFS(dir), "newWorld1.lvl")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Count(leveldata.KindGround))

	// overwrite keeps the name, save-as-new picks the next one
	p, err = SaveEditor(ed, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newWorld1.lvl"), p)

	p, err = SaveEditor(ed, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newWorld2.lvl"), p)
	assert.Equal(t, p, ed.Path)
}

func TestSaveEditorReportsErrors(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ed := CreateEditor(e, nil, filepath.Join(t.TempDir(), "missing", "x.lvl"))

	_, err := SaveEditor(ed, false)
	assert.Error(t, err)
	assert.NotEmpty(t, ed.Status)
}

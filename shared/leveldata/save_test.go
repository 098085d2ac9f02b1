package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNameSkipsTakenFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"newWorld1.lvl": {Data: []byte("")},
		"newWorld2.lvl": {Data: []byte("")},
		"newWorld4.lvl": {Data: []byte("")},
	}
	assert.Equal(t, "newWorld3.lvl", NextName(fsys, "newWorld"))
	assert.Equal(t, "other1.lvl", NextName(fsys, "other"))
}

func TestSaveFileRoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	l, err := ParseString("g 4 1 0 0\nP 1 2 1 1\n")
	require.NoError(t, err)

	require.NoError(t, SaveFile(filepath.Join(dir, "saved.lvl"), l))

	back, err := LoadFile(os.DirFS(dir), "saved.lvl")
	require.NoError(t, err)
	assert.Equal(t, "saved", back.Name)
	assert.Equal(t, l.Records, back.Records)
	assert.Equal(t, l.Checksum(), back.Checksum())
}

func TestSaveFileReportsPath(t *testing.T) {
	err := SaveFile(filepath.Join(t.TempDir(), "missing", "x.lvl"), &Level{})
	assert.ErrorContains(t, err, "save level")
}

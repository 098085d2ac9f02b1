package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/blockhop/shared/leveldata"
)

var (
	//go:embed levels/*.lvl
	levelFS embed.FS
)

// LevelLoader collects the built-in levels plus any extra files named on
// the command line or found in a configured directory.
type LevelLoader struct {
	Dir   string   // optional directory of *.lvl files
	Files []string // optional individual files, played first
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// Builtin returns the embedded levels in file name order.
func Builtin() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(levelFS, "levels")
}

// Load returns the explicit files, then the directory, then the built-in
// levels.
func (l *LevelLoader) Load() ([]*leveldata.Level, error) {
	var levels []*leveldata.Level
	for _, p := range l.Files {
		level, err := LoadPath(p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if l.Dir != "" {
		extra, err := leveldata.LoadAll(os.DirFS(l.Dir), ".")
		if err != nil {
			return nil, fmt.Errorf("failed to load levels from %s: %w", l.Dir, err)
		}
		levels = append(levels, extra...)
	}

	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	return append(levels, builtin...), nil
}

// LoadPath reads a level from the OS filesystem. Files ending in .tmx are
// imported from Tiled.
func LoadPath(p string) (*leveldata.Level, error) {
	fsys := os.DirFS(filepath.Dir(p))
	name := filepath.Base(p)
	if filepath.Ext(p) == ".tmx" {
		return leveldata.LoadTMX(fsys, name)
	}
	return leveldata.LoadFile(fsys, name)
}

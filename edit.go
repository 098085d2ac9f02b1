package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/scenes"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the level editor",
	Long: `Paint a level on a grid. Without a file, saving writes the next free
newWorldN.lvl. A file that does not exist yet is created on the first save;
a .tmx file is imported and saved next to it as .lvl.

Controls:
  1-6                  - Select ground, platform, box, player, enemy, erase
  Left mouse           - Paint
  Right mouse          - Erase
  Arrows/WASD          - Scroll
  Ctrl+S               - Save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	var (
		level *leveldata.Level
		path  string
	)
	if len(args) == 1 {
		path = args[0]
		l, err := assets.LoadPath(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("new level", "path", path)
		case err != nil:
			return err
		default:
			level = l
		}
		if filepath.Ext(path) == ".tmx" {
			path = strings.TrimSuffix(path, ".tmx") + ".lvl"
		}
	}

	return runGame(func(sc scenes.SceneChanger) scenes.Scene {
		return scenes.NewEditorScene(sc, logger, level, path)
	})
}

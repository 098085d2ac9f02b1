package main

import (
	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/scenes"
	"github.com/spf13/cobra"
)

var flagLevelsDir string

var playCmd = &cobra.Command{
	Use:   "play [level...]",
	Short: "Play levels",
	Long: `Play the named .lvl or .tmx files, then any levels in --levels, then
the built-in levels. Without files the title menu is shown first.

Controls:
  Left/Right, A/D      - Move
  Up/W, Space, X       - Jump
  Down/S               - Crouch
  R                    - Restart the level
  N                    - Next level
  E                    - Open the level in the editor
  Esc                  - Pause
  F1                   - Debug overlay`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra .lvl files")
}

func runPlay(cmd *cobra.Command, args []string) error {
	loader := assets.NewLevelLoader()
	loader.Files = args
	loader.Dir = config.C.LevelsDir
	if flagLevelsDir != "" {
		loader.Dir = flagLevelsDir
	}

	levels, err := loader.Load()
	if err != nil {
		return err
	}
	logger.Info("levels ready", "count", len(levels), "first", levels[0].Name)

	return runGame(func(sc scenes.SceneChanger) scenes.Scene {
		if len(args) > 0 || config.Debug.SkipMenu {
			return scenes.NewPlatformerScene(sc, logger, levels)
		}
		return scenes.NewMenuScene(sc, logger, levels)
	})
}

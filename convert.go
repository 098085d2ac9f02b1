package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in.tmx> <out.lvl>",
	Short: "Import a Tiled map",
	Long: `Convert a Tiled .tmx map to the plain-text level format.

Objects with class ground, platform, box, player or enemy become records,
as do tiles in layers named ground, platform or box.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	level, err := leveldata.LoadTMX(os.DirFS(filepath.Dir(in)), filepath.Base(in))
	if err != nil {
		return err
	}
	if _, ok := level.Player(); !ok {
		logger.Warn("map has no player", "path", in)
	}
	if err := leveldata.SaveFile(out, level); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records written to %s\n", in, len(level.Records), out)
	return nil
}

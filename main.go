// blockhop is a tile platformer with a built-in level editor.
//
// Usage:
//
//	blockhop [play] [level...]       - Play the given levels, then the built-in ones
//	blockhop edit [file]             - Open the level editor
//	blockhop convert <in.tmx> <out>  - Import a Tiled map as a .lvl file
//	blockhop simulate <level>        - Run a level headless and print the player state
//
// Global flags:
//
//	--config <path>       - YAML config overlay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--debug               - Start with the debug overlay on
//	--stats <addr>        - Serve runtime stats on addr
//	--sentry-dsn <dsn>    - Report crashes to Sentry
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagLogLevel  string
	flagDebug     bool
	flagStats     string
	flagSentryDSN string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockhop",
	})
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			reportPanic(r)
			panic(r)
		}
		sentry.Flush(5 * time.Second)
	}()

	if err = rootCmd.Execute(); err != nil {
		sentry.CaptureException(err)
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "blockhop [level...]",
	Short: "blockhop - a tile platformer with a level editor",
	Long: `blockhop is a small tile platformer. Run it without a command to play
the built-in levels, or name .lvl/.tmx files to play those first.

Available commands:
  play      - Play levels (default)
  edit      - Paint a level on a grid and save it as .lvl
  convert   - Import a Tiled .tmx map
  simulate  - Run a level without a window

Examples:
  blockhop
  blockhop play my-level.lvl
  blockhop edit newWorld1.lvl
  blockhop convert map.tmx map.lvl
  blockhop simulate assets/levels/01-first-steps.lvl --ticks 300 --hold right`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: setup,
	RunE:              runPlay,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay enabled")
	rootCmd.PersistentFlags().StringVar(&flagStats, "stats", "", "Serve the runtime stats viewer on this address")
	rootCmd.PersistentFlags().StringVar(&flagSentryDSN, "sentry-dsn", "", "Sentry DSN for crash reports")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra .lvl files")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(simulateCmd)
}

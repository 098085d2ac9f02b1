package main

import (
	"fmt"
	"time"

	"github.com/automoto/blockhop/config"
	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/spf13/cobra"
)

var telemetryEnabled bool

// setup runs before every command: config overlay, logger level, flag
// overrides, then the optional stats viewer and crash reporting.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	if cmd.Flags().Changed("debug") {
		config.Debug.Enabled = flagDebug
	}
	if flagStats != "" {
		config.Debug.StatsAddr = flagStats
	}
	if flagSentryDSN != "" {
		config.Telemetry.SentryDSN = flagSentryDSN
	}

	startStats(config.Debug.StatsAddr)
	return initTelemetry(config.Telemetry)
}

func startStats(addr string) {
	if addr == "" {
		return
	}
	// set configurations before calling `statsview.New()` method
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

	mgr := statsview.New()
	go mgr.Start()
	logger.Info("stats viewer running", "addr", "http://"+addr+"/debug/statsview")
}

func initTelemetry(t config.TelemetryConfig) error {
	if t.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         t.SentryDSN,
		Environment: t.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to init sentry: %w", err)
	}
	telemetryEnabled = true
	logger.Debug("crash reporting enabled", "environment", t.Environment)
	return nil
}

func reportPanic(r any) {
	logger.Error("panic", "error", r)
	if !telemetryEnabled {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.Recover(r)
	hub.Flush(time.Second * 5)
}

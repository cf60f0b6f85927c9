package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"bidmatch/internal/app"
	"bidmatch/internal/app/cli"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	application := createApp(cfg, logsVisible(os.Args[1:]))
	application.Run()
}

// logsVisible reports whether log output can be shown without corrupting the TUI.
// Only an interactive run takes over the screen; arguments that fail to parse are reported as text.
func logsVisible(args []string) bool {
	opts, err := cli.Parse(args)
	if err != nil {
		return true
	}

	return opts.Type != cli.CommandRun || opts.NoUI
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, showLogs bool) *fx.App {
	var logOutput io.Writer
	if !showLogs {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}

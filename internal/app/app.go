package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"bidmatch/internal/app/cli"
)

// App represents the main application container
type App struct {
	cli  cli.CLI
	args []string
	done chan struct{}
	exit func(code int)
}

// NewApp creates a new application instance running the CLI with the process arguments
func NewApp(cli cli.CLI) *App {
	return &App{
		cli:  cli,
		args: os.Args[1:],
		done: make(chan struct{}),
		exit: os.Exit,
	}
}

// Run executes the application and exits the process with the CLI exit code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	a.exit(exitCode)
}

// execute runs the CLI and returns exit code
func (a *App) execute() int {
	exitCode, _ := a.cli.Execute(a.args)

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/x/term"

	"bidmatch/internal/app/errors"
	"bidmatch/internal/app/generator"
	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/app/ui/pages"
	"bidmatch/internal/app/ui/shell"
	"bidmatch/internal/app/ui/wire"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

// defaultWidth is used for static frames when the terminal size is unknown
const defaultWidth = 100

// CLI defines the interface for cli operations
type CLI interface {
	Execute(args []string) (exitCode int, err error)
}

// terminal reports on the attached output
type terminal interface {
	IsTerminal() bool
	Width() int
}

type stdoutTerminal struct{}

func (stdoutTerminal) IsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

func (stdoutTerminal) Width() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}

// cli represents the command-line interface for the application
type cli struct {
	cfg   *config.Config
	ui    wire.UI
	pages pages.Registry
	gen   generator.Generator
	term  terminal
	out   io.Writer
	log   logger.Logger
}

// NewCLI creates a new cli instance writing to stdout
func NewCLI(
	cfg *config.Config,
	ui wire.UI,
	registry pages.Registry,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:   cfg,
		ui:    ui,
		pages: registry,
		gen:   gen,
		term:  stdoutTerminal{},
		out:   os.Stdout,
		log:   log.WithComponent("CLI"),
	}
}

// Execute parses args and runs the selected command
func (c *cli) Execute(args []string) (int, error) {
	opts, err := Parse(args)
	if err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
		c.log.Error().Err(err).Msg("Failed to parse arguments")
		c.printError(err)
		fmt.Fprintf(c.out, "Use '%s' for more information.\n", commandName.Render(config.AppName+" help"))

		return 1, err
	}

	switch opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandPages:
		return c.handlePages()
	case CommandInit:
		return c.handleInit(opts)
	default:
		return c.handleRun(opts)
	}
}

// handleRun starts the shell on the requested page, or prints one frame when no TUI is possible
func (c *cli) handleRun(opts *Options) (int, error) {
	page := opts.Page
	if page == "" {
		page = c.cfg.UI.StartPage
	}

	if _, ok := navigation.Lookup(page); !ok {
		err := fmt.Errorf("%w: %q (available: %v)", errors.ErrUnknownPage, page, navigation.IDs())
		c.log.Error().Err(err).Msg("Cannot start")
		c.printError(err)

		return 1, err
	}

	if opts.NoUI || !c.term.IsTerminal() {
		c.log.Debug().Str("page", page).Bool("no_ui", opts.NoUI).Msg("Printing static frame")
		fmt.Fprint(c.out, shell.Snapshot(page, c.pages, c.term.Width()))

		return 0, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	program, err := c.ui(ctx, page)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create UI")
		return 1, err
	}

	if _, err := program.Run(); err != nil {
		c.log.Error().Err(err).Msg("UI exited with error")
		return 1, err
	}

	return 0, nil
}

// handlePages prints the destinations in display order
func (c *cli) handlePages() (int, error) {
	for _, d := range navigation.Destinations() {
		fmt.Fprintf(c.out, "%s\t%s\n", d.ID, d.Label)
	}

	return 0, nil
}

// handleInit writes bidmatch.yaml seeded with the current configuration
func (c *cli) handleInit(opts *Options) (int, error) {
	genOpts := generator.Options{
		StartPage: c.cfg.UI.StartPage,
		LogLevel:  c.cfg.Logging.Level,
		LogFormat: c.cfg.Logging.Format,
		AltScreen: c.cfg.UI.AltScreen,
		Mouse:     c.cfg.UI.Mouse,
	}

	if opts.Page != "" {
		genOpts.StartPage = opts.Page
	}

	if err := c.gen.Generate(genOpts, opts.Force, opts.DryRun); err != nil {
		c.log.Error().Err(err).Msg("Failed to generate config")
		c.printError(err)

		return 1, err
	}

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return 0, nil
}

func (c *cli) printError(err error) {
	fmt.Fprintln(c.out, RenderError(err))
}

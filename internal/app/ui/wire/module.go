package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"bidmatch/internal/app/ui/pages"
	"bidmatch/internal/app/ui/shell"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

// UI creates a Bubble Tea program for the navigation shell
type UI func(ctx context.Context, startPage string) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(
		pages.DefaultRegistry,
		NewUI,
	),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config *config.Config
	Pages  pages.Registry
	Logger logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, startPage string) (*tea.Program, error) {
		model := shell.NewModel(startPage, params.Pages, params.Logger)

		opts := []tea.ProgramOption{tea.WithContext(ctx)}
		if params.Config.UI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}

		if mouseEnabled(params.Config) {
			opts = append(opts, tea.WithMouseCellMotion())
		} else if params.Config.UI.Mouse {
			params.Logger.Warn().Msg("TUI: Mouse input requires alt_screen, ignoring mouse setting")
		}

		p := tea.NewProgram(model, opts...)

		params.Logger.Debug().Str("page", startPage).Msg("TUI: Program created via factory")

		return p, nil
	}
}

// mouseEnabled reports whether mouse capture can be turned on. Tab zones are
// measured from the top row of the screen, which is only the bar on the alternate screen.
func mouseEnabled(cfg *config.Config) bool {
	return cfg.UI.Mouse && cfg.UI.AltScreen
}

// Package shell is the host of the navigation bar: it owns the current page and swaps content pages.
package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
	"bidmatch/internal/app/ui/navbar"
	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/app/ui/pages"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

// Model is the Bubble Tea root model of the navigation shell
type Model struct {
	nav   navigation.Navigator
	bar   *navbar.Bar
	pages pages.Registry

	ui struct {
		width    int
		height   int
		ready    bool
		keys     KeyMap
		help     help.Model
		viewport viewport.Model
	}

	log logger.Logger
}

// NewModel creates a shell starting at startPage
func NewModel(startPage string, registry pages.Registry, log logger.Logger) Model {
	log = log.WithComponent("SHELL")
	nav := navigation.NewNavigator(startPage)

	m := Model{
		nav:   nav,
		pages: registry,
		log:   log,
	}

	m.bar = navbar.New(func(pageID string) {
		previous := nav.CurrentPage()
		nav.SwitchTo(pageID)

		log.Debug().Str("from", previous).Str("to", pageID).Msg("Page changed")
	})

	m.ui.keys = DefaultKeyMap(m.bar.Keys())
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)

	log.Debug().Str("page", startPage).Msg("Shell created")

	return m
}

// CurrentPage returns the identifier of the active destination
func (m Model) CurrentPage() string {
	return m.nav.CurrentPage()
}

// Init sets the terminal title
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshContent()

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.ui.keys.ForceQuit), key.Matches(msg, m.ui.keys.Quit):
			m.log.Debug().Str("key", msg.String()).Msg("Quit requested")
			return m, tea.Quit

		case key.Matches(msg, m.ui.keys.Help):
			m.ui.help.ShowAll = !m.ui.help.ShowAll
			m.resize(m.ui.width, m.ui.height)

			return m, nil
		}
	}

	previous := m.nav.CurrentPage()
	if m.bar.Update(msg, previous) {
		if m.nav.CurrentPage() != previous {
			m.refreshContent()
			m.ui.viewport.GotoTop()
		}

		return m, nil
	}

	var cmds []tea.Cmd

	if page, ok := m.pages.Get(m.nav.CurrentPage()); ok {
		cmds = append(cmds, page.Update(msg))
	}

	var cmd tea.Cmd

	m.ui.viewport, cmd = m.ui.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize fits the content viewport between the bar and the footer
func (m *Model) resize(width, height int) {
	m.ui.width = width
	m.ui.height = height
	m.ui.help.Width = width

	m.ui.viewport.Width = max(width, components.MinContentWidth)
	footerHeight := components.FooterHeight - 1 + lipgloss.Height(m.ui.help.View(m.ui.keys))
	m.ui.viewport.Height = max(height-navbar.Height-footerHeight, components.MinContentHeight)

	if width > 0 {
		m.ui.ready = true
	}
}

// refreshContent loads the current page into the viewport; unknown pages leave it empty
func (m *Model) refreshContent() {
	m.ui.viewport.SetContent(renderPage(m.pages, m.nav.CurrentPage()))
}

func renderPage(registry pages.Registry, pageID string) string {
	page, ok := registry.Get(pageID)
	if !ok {
		return ""
	}

	return components.RenderContent(page.View())
}

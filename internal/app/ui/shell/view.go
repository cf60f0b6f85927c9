package shell

import (
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
	"bidmatch/internal/app/ui/navbar"
	"bidmatch/internal/app/ui/pages"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.bar.View(m.nav.CurrentPage(), m.ui.width),
		m.ui.viewport.View(),
		components.RenderFooter(m.ui.width, m.ui.help.View(m.ui.keys)),
	)
}

// Snapshot renders one static frame of the bar and the page for pageID
func Snapshot(pageID string, registry pages.Registry, width int) string {
	bar := navbar.New(nil)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		bar.View(pageID, width),
		renderPage(registry, pageID),
	) + "\n"
}

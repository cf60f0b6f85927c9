package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
)

const unavailableNotice = "Esta página não está disponível nesta versão."

// Unavailable stands in for a destination whose page is not part of this build
type Unavailable struct {
	title string
}

// NewUnavailable creates a stand-in page titled title
func NewUnavailable(title string) Unavailable {
	return Unavailable{title: title}
}

// Title returns the page heading
func (u Unavailable) Title() string {
	return u.title
}

// Update ignores every message
func (Unavailable) Update(tea.Msg) tea.Cmd {
	return nil
}

// View renders the heading and the notice
func (u Unavailable) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render(u.title),
		components.EmptyStateStyle.Render(unavailableNotice),
	)
}

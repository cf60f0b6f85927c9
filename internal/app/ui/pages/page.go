// Package pages holds the content pages displayed below the navigation bar.
package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"bidmatch/internal/app/ui/navigation"
)

// Page is a content area the shell can display for a destination
type Page interface {
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Registry maps destination identifiers to pages
type Registry map[string]Page

// DefaultRegistry returns a page for every built-in destination
func DefaultRegistry() Registry {
	r := make(Registry)

	for _, d := range navigation.Destinations() {
		r[d.ID] = NewUnavailable(d.Label)
	}

	r[navigation.PageAnalytics] = NewAnalytics()

	return r
}

// Get returns the page registered for id
func (r Registry) Get(id string) (Page, bool) {
	p, ok := r[id]
	return p, ok
}

// Package navbar renders the top navigation bar and reports selections to its host.
//
// The bar never stores which page is current. The host passes the current page
// on every call and learns about selections only through the callback given to New.
package navbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
	"bidmatch/internal/app/ui/icons"
	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/config"
)

// Layout constants
const (
	// Height is the number of rows the bar occupies: tabs and the indicator rule
	Height = 2

	brandGap = 2
	tabGap   = 1
	menuGap  = 2

	activeRule = "━"
)

// Item is a destination paired with its derived visual state
type Item struct {
	navigation.Destination
	Active bool
}

// zone is the horizontal span [Start, End) of a clickable element on the tab row
type zone struct {
	ID    string
	Start int
	End   int
}

// Bar is the navigation bar component
type Bar struct {
	destinations []navigation.Destination
	onPageChange func(pageID string)
	keys         KeyMap
}

// New creates a bar reporting selections to onPageChange; nil means selections are dropped
func New(onPageChange func(pageID string)) *Bar {
	if onPageChange == nil {
		onPageChange = func(string) {}
	}

	return &Bar{
		destinations: navigation.Destinations(),
		onPageChange: onPageChange,
		keys:         DefaultKeyMap(),
	}
}

// Keys returns the bar key bindings for help rendering
func (b *Bar) Keys() KeyMap {
	return b.keys
}

// Items derives the per-destination state for currentPage, in display order
func (b *Bar) Items(currentPage string) []Item {
	items := make([]Item, len(b.destinations))
	for i, d := range b.destinations {
		items[i] = Item{Destination: d, Active: d.ID == currentPage}
	}

	return items
}

// Activate reports a selection of pageID to the host
func (b *Bar) Activate(pageID string) {
	b.onPageChange(pageID)
}

// ToggleMenu is the condensed-menu control. It is not implemented yet and does nothing.
func (b *Bar) ToggleMenu() {}

// Update maps an input message to an activation and reports whether the bar consumed it
func (b *Bar) Update(msg tea.Msg, currentPage string) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg, currentPage)
	case tea.MouseMsg:
		return b.handleMouse(msg)
	}

	return false
}

func (b *Bar) handleKey(msg tea.KeyMsg, currentPage string) bool {
	for i, binding := range b.keys.Pages {
		if i < len(b.destinations) && key.Matches(msg, binding) {
			b.Activate(b.destinations[i].ID)
			return true
		}
	}

	switch {
	case key.Matches(msg, b.keys.Next):
		b.Activate(b.neighbor(currentPage, 1))
		return true
	case key.Matches(msg, b.keys.Prev):
		b.Activate(b.neighbor(currentPage, -1))
		return true
	case key.Matches(msg, b.keys.Menu):
		b.ToggleMenu()
		return true
	}

	return false
}

func (b *Bar) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
		return false
	}

	for _, z := range b.zones() {
		if msg.X >= z.Start && msg.X < z.End {
			b.Activate(z.ID)
			return true
		}
	}

	if z := b.menuZone(); msg.X >= z.Start && msg.X < z.End {
		b.ToggleMenu()
		return true
	}

	return false
}

// neighbor returns the destination step positions away from currentPage, wrapping.
// From an unknown page, a forward step lands on the first destination and a backward step on the last.
func (b *Bar) neighbor(currentPage string, step int) string {
	n := len(b.destinations)

	idx := navigation.IndexOf(currentPage)
	if idx < 0 {
		if step > 0 {
			return b.destinations[0].ID
		}

		return b.destinations[n-1].ID
	}

	return b.destinations[((idx+step)%n+n)%n].ID
}

// View renders the bar for currentPage, padded to width
func (b *Bar) View(currentPage string, width int) string {
	items := b.Items(currentPage)

	tabs := make([]string, len(items))
	rules := make([]string, len(items))

	for i, item := range items {
		cell := inactiveTabStyle.Render(tabText(item.Destination))
		rule := components.RenderLine(lipgloss.Width(cell))

		if item.Active {
			cell = activeTabStyle.Render(tabText(item.Destination))
			rule = activeRuleStyle.Render(strings.Repeat(activeRule, lipgloss.Width(cell)))
		}

		tabs[i] = cell
		rules[i] = rule
	}

	brand := renderBrand()
	menu := menuStyle.Render(icons.Menu.Glyph())

	var top strings.Builder
	top.WriteString(brand)
	top.WriteString(strings.Repeat(" ", brandGap))
	top.WriteString(strings.Join(tabs, strings.Repeat(" ", tabGap)))
	top.WriteString(strings.Repeat(" ", menuGap))
	top.WriteString(menu)

	topRow := top.String()
	rowWidth := max(width, lipgloss.Width(topRow))

	var bottom strings.Builder
	bottom.WriteString(components.RenderLine(lipgloss.Width(brand) + brandGap))
	bottom.WriteString(strings.Join(rules, components.RenderLine(tabGap)))
	bottom.WriteString(components.RenderLine(rowWidth - (lipgloss.Width(topRow) - menuGap - lipgloss.Width(menu))))

	return components.PadRight(topRow, rowWidth) + "\n" + bottom.String()
}

// zones computes the clickable span of each tab; active styling does not change widths
func (b *Bar) zones() []zone {
	x := lipgloss.Width(renderBrand()) + brandGap
	zones := make([]zone, len(b.destinations))

	for i, d := range b.destinations {
		w := lipgloss.Width(inactiveTabStyle.Render(tabText(d)))
		zones[i] = zone{ID: d.ID, Start: x, End: x + w}
		x += w + tabGap
	}

	return zones
}

// menuZone computes the clickable span of the menu toggle
func (b *Bar) menuZone() zone {
	zones := b.zones()
	start := zones[len(zones)-1].End + menuGap

	return zone{Start: start, End: start + lipgloss.Width(menuStyle.Render(icons.Menu.Glyph()))}
}

func renderBrand() string {
	return brandStyle.Render(icons.Brand.Glyph() + " " + config.AppName)
}

func tabText(d navigation.Destination) string {
	glyph := icons.Render(d.Icon, lipgloss.NewStyle())
	if glyph == "" {
		return d.Label
	}

	return glyph + " " + d.Label
}

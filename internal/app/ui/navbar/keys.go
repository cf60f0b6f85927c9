package navbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"bidmatch/internal/app/ui/navigation"
)

// KeyMap defines the key bindings that activate navigation bar elements
type KeyMap struct {
	// Pages holds one binding per destination, by display position
	Pages []key.Binding
	// Jump matches any page key and carries the combined help entry
	Jump key.Binding
	Next key.Binding
	Prev key.Binding
	Menu key.Binding
}

// DefaultKeyMap returns the default navigation bar bindings
func DefaultKeyMap() KeyMap {
	ids := navigation.IDs()
	pages := make([]key.Binding, len(ids))
	all := make([]string, len(ids))

	for i, id := range ids {
		k := fmt.Sprintf("%d", i+1)
		all[i] = k
		pages[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, id),
		)
	}

	return KeyMap{
		Pages: pages,
		Jump: key.NewBinding(
			key.WithKeys(all...),
			key.WithHelp(fmt.Sprintf("1-%d", len(ids)), "go to page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l/tab", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h/shift+tab", "previous page"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Prev, k.Next}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Prev, k.Next, k.Menu},
	}
}

package shell

import (
	"github.com/charmbracelet/bubbles/key"

	"bidmatch/internal/app/ui/components"
	"bidmatch/internal/app/ui/navbar"
)

// KeyMap defines the key bindings shown in the shell footer
type KeyMap struct {
	components.KeyMap
	Nav    navbar.KeyMap
	Scroll key.Binding
}

// DefaultKeyMap returns the default shell bindings
func DefaultKeyMap(nav navbar.KeyMap) KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Nav:    nav,
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.Nav.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Nav.FullHelp(), []key.Binding{k.Scroll, k.Help, k.Quit, k.ForceQuit})
}

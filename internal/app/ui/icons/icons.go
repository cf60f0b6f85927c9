// Package icons provides the glyphs drawn next to navigation labels.
package icons

import "github.com/charmbracelet/lipgloss"

// Icon is anything that can render itself as a terminal glyph
type Icon interface {
	Glyph() string
}

// Rune is an Icon backed by a single-cell character
type Rune string

// Glyph returns the character
func (r Rune) Glyph() string {
	return string(r)
}

// Built-in glyphs, all single-cell to keep tab widths stable
const (
	Brand     Rune = "◆"
	Dashboard Rune = "▦"
	Search    Rune = "⌕"
	Analytics Rune = "▥"
	Config    Rune = "⚙"
	Menu      Rune = "≡"
)

// Render draws icon with style; a nil icon renders as an empty string
func Render(icon Icon, style lipgloss.Style) string {
	if icon == nil {
		return ""
	}

	return style.Render(icon.Glyph())
}

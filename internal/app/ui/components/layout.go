package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderFooter renders the footer with version line and help text
func RenderFooter(width int, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)
	versionWidth := lipgloss.Width(version)

	separatorWidth := width - versionWidth - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	versionLine := RenderLine(separatorWidth) + " " + version + " " + RenderLine(3)
	help := HelpStyle.Render(helpText)

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, help))
}

// RenderContent wraps content with page padding
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// RenderCard renders a bordered label + description card of a fixed outer width
func RenderCard(label, description string, width int) string {
	inner := width - CardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		CardLabelStyle.Render(truncate(label, inner)),
		CardDescriptionStyle.Width(inner).Render(description),
	)

	return CardStyle.Width(width - CardStyle.GetHorizontalBorderSize()).Render(body)
}

// RenderGrid lays cells out left to right, wrapping every columns cells
func RenderGrid(cells []string, columns, gap int) string {
	if len(cells) == 0 {
		return ""
	}

	if columns < 1 {
		columns = 1
	}

	spacer := strings.Repeat(" ", gap)
	rows := make([]string, 0, (len(cells)+columns-1)/columns)

	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))

		row := make([]string, 0, 2*(end-start))
		for i, cell := range cells[start:end] {
			if i > 0 {
				row = append(row, spacer)
			}

			row = append(row, cell)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// PadRight pads s with spaces up to width cells
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}

package navbar

import (
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
)

// Navigation bar styles. Active and inactive tabs share padding so tab widths never change.
var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(components.FgPrimary)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(components.FgMuted).
				Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(components.FgPrimary).
			Background(components.BgSelection).
			Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Foreground(components.FgBorder).
			Padding(0, 1)

	activeRuleStyle = lipgloss.NewStyle().
			Foreground(components.FgPrimary)
)

package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for page headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary).
			MarginBottom(1)

	// BodyStyle for paragraphs
	BodyStyle = lipgloss.NewStyle().
			Foreground(FgText)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// ContentStyle pads the page area
	ContentStyle = lipgloss.NewStyle().
			Padding(1, ContentPadding, 0, ContentPadding)

	// FooterStyle for the footer block
	FooterStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	CardLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgAccent)

	CardDescriptionStyle = lipgloss.NewStyle().
				Foreground(FgMuted)
)

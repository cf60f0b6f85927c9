package cli

import (
	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/components"
	"bidmatch/internal/config"
)

// Headline - section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary).MarginTop(1)
)

// Title - accents for command names
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(components.FgAccent)
)

// Body - main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(components.FgText)
	bodyMedium = lipgloss.NewStyle().Foreground(components.FgText)
)

// Label - supplementary content
var (
	labelMuted = lipgloss.NewStyle().Foreground(components.FgBorder)
)

// Semantic styles
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	commandName   = titleMedium
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary)
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderError renders a one-line error message
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + bodyMedium.Render(err.Error())
}

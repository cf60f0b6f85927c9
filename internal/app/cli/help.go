package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/config"
)

type usageLine struct {
	command     string
	description string
}

var usageLines = []usageLine{
	{command: config.AppName, description: "Start on the configured page"},
	{command: config.AppName + " run [page]", description: "Start on the given page"},
	{command: config.AppName + " --page <page> --no-ui", description: "Print one frame of a page and exit"},
	{command: config.AppName + " pages", description: "List pages in display order"},
	{command: config.AppName + " init [--force] [--dry-run]", description: "Generate " + config.FileName},
	{command: config.AppName + " version", description: "Show version"},
	{command: config.AppName + " help", description: "Show help"},
}

var exampleLines = []usageLine{
	{command: config.AppName + " run search", description: "Open Buscar & Reavaliar"},
	{command: config.AppName + " -p analytics --no-ui", description: "Print the analytics page"},
	{command: config.AppName + " init --dry-run", description: "Preview the generated config"},
}

// renderHelp renders the full help screen
func renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderLines(usageLines, commandName),
		sectionHeader.Render("Pages:"),
		renderPages(),
		sectionHeader.Render("Examples:"),
		renderLines(exampleLines, exampleCode),
	) + "\n"
}

// renderPages lists destinations in display order, one per line
func renderPages() string {
	destinations := navigation.Destinations()
	lines := make([]string, len(destinations))

	for i, d := range destinations {
		lines[i] = bodyMedium.Render(fmt.Sprintf("  %d  %s", i+1, commandName.Render(fmt.Sprintf("%-10s", d.ID)))) +
			labelMuted.Render(d.Label)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.command))
	}

	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = bodyMedium.Render("  "+style.Render(fmt.Sprintf("%-*s", width, l.command))+"   ") +
			labelMuted.Render(l.description)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

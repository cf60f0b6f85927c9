package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgText    = lipgloss.Color("#E0E0E0") // Near white - body text

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - active tab background

	// Accent colors
	FgAccent = lipgloss.Color("#04B575") // Green - card labels
)

// SeparatorColor is the adaptive color for rules and separators
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

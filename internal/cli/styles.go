package cli

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for status output.
var Colors = struct {
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Error:   lipgloss.Color("#D63031"), // Red
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

var (
	startingStyle = lipgloss.NewStyle().Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(Colors.Success)
	failStyle     = lipgloss.NewStyle().Foreground(Colors.Error).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(Colors.Warning)
)

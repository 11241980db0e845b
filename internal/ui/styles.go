package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - selection indicator, ripple
	ColorMuted     = "241" // Gray - icons before full reveal, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorInverse   = "16"  // Near black - text drawn on the indicator
)

// Styles contains shared style definitions used across surfaces and the panel.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for main titles
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status indicators
	Selected lipgloss.Style // Highlighted item
	Footer   lipgloss.Style // Bottom status bar
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
)

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - speed, next stop
	colorYellow  = lipgloss.Color("3")  // Yellow - minor delays
	colorRed     = lipgloss.Color("1")  // Red - major delays, errors
	colorGreen   = lipgloss.Color("2")  // Green - on time
	colorMagenta = lipgloss.Color("5")  // Magenta - tracks
	colorWhite   = lipgloss.Color("15") // White - text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleSpeed    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleOnTime   = lipgloss.NewStyle().Foreground(colorGreen)
	styleDelay    = lipgloss.NewStyle().Foreground(colorYellow)
	styleDelayBad = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleTrack    = lipgloss.NewStyle().Foreground(colorMagenta)
	styleNextStop = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(colorGray)
	styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Stale notice in the status bar
var styleStale = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorYellow).
	Bold(true)

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// formatDelay returns delay minutes styled by severity (4-char width).
// Early arrivals render signed, on time stays blank.
func formatDelay(minutes int) string {
	if minutes == 0 {
		return "    "
	}
	if minutes < 0 {
		return styleOnTime.Render(fmt.Sprintf("%4d", minutes))
	}
	s := fmt.Sprintf("%+4d", minutes)
	switch dashboard.ClassifyDelay(minutes) {
	case dashboard.MoodSlight:
		return styleDelay.Render(s)
	default:
		return styleDelayBad.Render(s)
	}
}

package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Speed     func(format string, a ...interface{}) string
	OnTime    func(format string, a ...interface{}) string
	Delay     func(format string, a ...interface{}) string
	DelayHigh func(format string, a ...interface{}) string
	Station   func(format string, a ...interface{}) string
	NextStop  func(format string, a ...interface{}) string
	Track     func(format string, a ...interface{}) string
	Header    func(format string, a ...interface{}) string
	Muted     func(format string, a ...interface{}) string
	Passed    func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Speed:     noColor,
			OnTime:    noColor,
			Delay:     noColor,
			DelayHigh: noColor,
			Station:   noColor,
			NextStop:  noColor,
			Track:     noColor,
			Header:    noColor,
			Muted:     noColor,
			Passed:    noColor,
		}
	}

	return &Colors{
		Speed:     color.New(color.FgCyan, color.Bold).SprintfFunc(),
		OnTime:    color.New(color.FgGreen).SprintfFunc(),
		Delay:     color.New(color.FgYellow).SprintfFunc(),
		DelayHigh: color.New(color.FgRed, color.Bold).SprintfFunc(),
		Station:   color.New(color.FgWhite).SprintfFunc(),
		NextStop:  color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Track:     color.New(color.FgMagenta).SprintfFunc(),
		Header:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:     color.New(color.FgHiBlack).SprintfFunc(),
		Passed:    color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatDelay formats arrival delay minutes colored by severity
// (fixed 4-char width). Early arrivals render signed, on time stays blank.
func (c *Colors) FormatDelay(minutes int) string {
	if minutes == 0 {
		return "    " // 4 spaces for alignment
	}
	if minutes < 0 {
		return c.OnTime("%4d", minutes)
	}
	switch dashboard.ClassifyDelay(minutes) {
	case dashboard.MoodSlight:
		return c.Delay("%+4d", minutes)
	default:
		return c.DelayHigh("%+4d", minutes)
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

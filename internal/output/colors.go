package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
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
	Price   func(format string, a ...interface{}) string
	Rooms   func(format string, a ...interface{}) string
	Area    func(format string, a ...interface{}) string
	Region  func(format string, a ...interface{}) string
	Subject func(format string, a ...interface{}) string
	Agency  func(format string, a ...interface{}) string
	Time    func(format string, a ...interface{}) string
	Header  func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
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
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Price:   noColor,
			Rooms:   noColor,
			Area:    noColor,
			Region:  noColor,
			Subject: noColor,
			Agency:  noColor,
			Time:    noColor,
			Header:  noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Price:   color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Rooms:   color.New(color.FgCyan).SprintfFunc(),
		Area:    color.New(color.FgCyan).SprintfFunc(),
		Region:  color.New(color.FgMagenta).SprintfFunc(),
		Subject: color.New(color.FgWhite).SprintfFunc(),
		Agency:  color.New(color.FgYellow).SprintfFunc(),
		Time:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Header:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
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

package tui

import "github.com/charmbracelet/lipgloss"

// Colors matching existing output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - prices
	colorYellow  = lipgloss.Color("3")  // Yellow - rooms, loading
	colorRed     = lipgloss.Color("1")  // Red - errors, agency tag
	colorGreen   = lipgloss.Color("2")  // Green - area
	colorMagenta = lipgloss.Color("5")  // Magenta - regions
	colorWhite   = lipgloss.Color("15") // White - subjects, text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	stylePrice  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleRooms  = lipgloss.NewStyle().Foreground(colorYellow)
	styleArea   = lipgloss.NewStyle().Foreground(colorGreen)
	styleRegion = lipgloss.NewStyle().Foreground(colorMagenta)
	styleAgency = lipgloss.NewStyle().Foreground(colorRed)
	styleMuted  = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
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

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Active chip in the filter bar
var styleChipActive = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

// Focused chip cursor in the filter bar, reverse-video style
var styleChipCursor = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - section headers
)

// Difficulty colors
const (
	ColorAdvanced     Color = "214" // Orange
	ColorBeginner     Color = "2"   // Green
	ColorElite        Color = "196" // Bright red
	ColorIntermediate Color = "3"   // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSuccess   Color = "2"   // Green - completed actions
)

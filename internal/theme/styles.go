package theme

import (
	"github.com/charmbracelet/lipgloss"

	"calix/internal/domain"
)

// Output styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Status styles
var (
	CurrentStepStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// DifficultyStyle returns the style for a difficulty tier
func DifficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyBeginner:
		return lipgloss.NewStyle().Foreground(ColorBeginner)
	case domain.DifficultyIntermediate:
		return lipgloss.NewStyle().Foreground(ColorIntermediate)
	case domain.DifficultyAdvanced:
		return lipgloss.NewStyle().Foreground(ColorAdvanced)
	case domain.DifficultyElite:
		return lipgloss.NewStyle().Foreground(ColorElite)
	default:
		return NormalStyle
	}
}

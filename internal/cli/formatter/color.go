package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tandemlab/tandem/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// IntensityIndicator returns a colored intensity label such as "● ALTA".
func IntensityIndicator(level domain.Intensity) string {
	switch level {
	case domain.IntensityHigh:
		return StyleRed.Render("● ALTA")
	case domain.IntensityMedium:
		return StyleYellow.Render("● MEDIA")
	case domain.IntensityLow:
		return StyleGreen.Render("● BAJA")
	default:
		return StyleDim.Render("● ?")
	}
}

// MoodBadge returns a styled mood label for plan headers.
func MoodBadge(mood domain.Mood) string {
	switch mood {
	case domain.MoodTired:
		return StyleBlue.Render("☾ cansados")
	case domain.MoodEnergetic:
		return StyleRed.Render("⚡ con energía")
	case domain.MoodCalm:
		return StyleGreen.Render("● tranquilos")
	case domain.MoodFun:
		return StyleYellow.Render("★ divertidos")
	default:
		return StyleDim.Render("sin ánimo declarado")
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1)
)

var tierStyles = map[domain.Tier]lipgloss.Style{
	domain.TierEditing:     lipgloss.NewStyle().Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0")).Bold(true),
	domain.TierEmpty:       lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")),
	domain.TierPartialLow:  lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("255")),
	domain.TierPartialHigh: lipgloss.NewStyle().Background(lipgloss.Color("31")).Foreground(lipgloss.Color("255")),
	domain.TierFull:        lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")).Bold(true),
}

var iconGlyphs = map[domain.IconType]string{
	domain.IconVocal:    "V",
	domain.IconGuitar:   "G",
	domain.IconBass:     "B",
	domain.IconDrum:     "D",
	domain.IconKeyboard: "K",
	domain.IconDefault:  "•",
}

func tierStyle(t domain.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return tierStyles[domain.TierEmpty]
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[domain.IconType(icon)]; ok {
		return g
	}
	return iconGlyphs[domain.IconDefault]
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-content-keeper/internal/service"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#9D8CFF"}
	muted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	good   = lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#5BD67A"}
	bad    = lipgloss.AdaptiveColor{Light: "#C5221F", Dark: "#FF6B6B"}

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dividerStyle    = lipgloss.NewStyle().Foreground(muted)
	helpStyle       = lipgloss.NewStyle().Foreground(muted)
	idStyle         = lipgloss.NewStyle().Foreground(muted)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	selectedStyle   = lipgloss.NewStyle().Foreground(accent)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(bad)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
)

func stateStyle(s service.State) lipgloss.Style {
	switch s {
	case service.StateConfirmed:
		return lipgloss.NewStyle().Foreground(good)
	case service.StateFailed:
		return lipgloss.NewStyle().Foreground(bad)
	default:
		return helpStyle
	}
}

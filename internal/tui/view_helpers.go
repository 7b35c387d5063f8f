package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 72

// renderPage lays out a titled body framed by dividers, followed by an
// optional status line and the key help.
func renderPage(title, body, status, hotKeys string) string {
	divider := dividerStyle.Render(strings.Repeat("─", pageWidth))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{
		titleStyle.Render(title),
		divider,
		lipgloss.NewStyle().MarginLeft(2).Render(body),
		divider,
	}
	if status != "" {
		parts = append(parts, status)
	}
	if hotKeys != "" {
		parts = append(parts, helpStyle.Render(hotKeys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitText shortens v to at most max runes, ending in "..." when cut.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

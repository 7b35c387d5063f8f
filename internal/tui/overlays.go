package tui

import "fmt"

type confirmModel struct {
	count  int
	plural string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Delete %d selected %s?\n\n", m.count, m.plural)
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}

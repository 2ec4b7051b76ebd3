package forms

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

func renderTitle(title string, focused bool) string {
	color := theme.Subtle
	if focused {
		color = theme.Highlight
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title)
}

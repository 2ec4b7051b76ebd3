package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

type StatusBarProps struct {
	Left  string
	Right string
	Width int
}

// RenderStatusBar renders a full-width bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	leftWidth := lipgloss.Width(props.Left)
	rightWidth := lipgloss.Width(props.Right)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	return style.Render(props.Left + strings.Repeat(" ", gapWidth) + props.Right)
}

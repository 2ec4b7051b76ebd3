package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

// renderHelp lists the active key bindings
func (m Model) renderHelp() string {
	km := m.config.KeyMappings

	bindings := []struct{ key, action string }{
		{km.NextEntry + " / ↓", "next entry"},
		{km.PrevEntry + " / ↑", "previous entry"},
		{"g / G", "first / last entry"},
		{km.AddEntry, "add entry"},
		{km.ViewEntry + " / enter", "view entry"},
		{km.EditNotes, "edit notes"},
		{km.DeleteEntry, "delete entry"},
		{km.SaveForm, "save form"},
		{"esc", "cancel / back"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Width(14)
	actionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)).Render("Keys"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		fmt.Fprintf(&b, "%s%s\n", keyStyle.Render(binding.key), actionStyle.Render(binding.action))
	}
	return strings.TrimRight(b.String(), "\n")
}

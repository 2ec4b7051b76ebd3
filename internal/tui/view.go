package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/recall/internal/tui/components"
	"github.com/thenoetrevino/recall/internal/tui/state"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

// View renders the current state in the alternate screen
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	bodyHeight := max(m.uiState.Height()-3, 1)
	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderBody(bodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderNotification(),
		body,
		m.renderStatusBar(),
	)
}

func (m Model) renderBody(height int) string {
	switch m.uiState.Mode() {
	case state.AddEntryMode:
		return m.renderForm("New entry")
	case state.EditNotesMode:
		heading := fmt.Sprintf("Edit notes for entry #%d", m.targetID)
		if entry := m.selected(); entry != nil && entry.ID == m.targetID {
			heading = fmt.Sprintf("Edit notes for #%d %s", entry.ID, entry.Title)
		}
		return m.renderForm(heading)
	case state.ViewEntryMode:
		return m.renderEntry()
	case state.DeleteConfirmMode:
		return m.renderDeleteConfirm(height)
	case state.HelpMode:
		return m.renderHelp()
	default:
		return m.renderList()
	}
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render("recall")
	count := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf(" %d entries", m.listState.Len()))
	return title + count
}

func (m Model) renderNotification() string {
	n, ok := m.notificationState.Current()
	if !ok {
		return ""
	}

	color := theme.InfoFg
	switch n.Level {
	case state.LevelWarning:
		color = theme.WarningFg
	case state.LevelError:
		color = theme.ErrorFg
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(n.Message)
}

func (m Model) renderList() string {
	if m.listState.Len() == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render(fmt.Sprintf("No entries yet. Press %s to add one.", m.config.KeyMappings.AddEntry))
	}

	entries := m.listState.Entries()
	width := m.uiState.Width()
	idWidth := components.IDWidth(entries)

	start := m.uiState.ScrollOffset()
	end := min(start+m.visibleRows(), len(entries))

	rows := make([]string, 0, end-start+1)
	rows = append(rows, components.RenderEntryHeader(width, idWidth))
	for i := start; i < end; i++ {
		rows = append(rows, components.RenderEntryRow(components.EntryRowProps{
			Entry:    entries[i],
			IDWidth:  idWidth,
			Width:    width,
			Selected: i == m.listState.Cursor(),
		}))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderEntry() string {
	entry := m.selected()
	if entry == nil {
		return "No entry selected"
	}

	width := max(m.uiState.Width()-4, 20)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(wordwrap.String(entry.Title, width))
	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("#%d  %s  %s", entry.ID, entry.Date, entry.Time))
	notes := components.RenderNotes(components.NotesProps{Notes: entry.Notes, Width: width})

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, meta, "", notes))
}

func (m Model) renderForm(heading string) string {
	if m.form == nil {
		return ""
	}

	km := m.config.KeyMappings
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render(wordwrap.String(heading, max(m.uiState.Width()-2, 20)))
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("%s save • esc cancel • tab next field", km.SaveForm))

	return lipgloss.JoinVertical(lipgloss.Left, head, "", m.form.View(), "", hint)
}

func (m Model) renderDeleteConfirm(height int) string {
	if m.confirm == nil {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2).
		Render(m.confirm.View())
	return lipgloss.Place(m.uiState.Width(), height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderStatusBar() string {
	km := m.config.KeyMappings
	return components.RenderStatusBar(components.StatusBarProps{
		Left:  " " + m.uiState.Mode().String(),
		Right: km.ShowHelp + " help • " + km.Quit + " quit ",
		Width: m.uiState.Width(),
	})
}

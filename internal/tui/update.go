package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/recall/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.resizeForm()
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)
	}

	// Cursor blinks and other widget messages belong to the open form
	if m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress dispatches a key to the handler for the current mode
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.AddEntryMode, state.EditNotesMode:
		return m.handleFormMode(msg)
	case state.ViewEntryMode:
		return m.handleViewMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

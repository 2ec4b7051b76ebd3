package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/recall/internal/models"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
	"github.com/thenoetrevino/recall/internal/tui/forms"
	"github.com/thenoetrevino/recall/internal/tui/state"
)

// handleNormalMode handles keys while browsing the entry list
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.NextEntry, "down":
		m.listState.MoveDown()
	case km.PrevEntry, "up":
		m.listState.MoveUp()
	case "g", "home":
		m.listState.First()
	case "G", "end":
		m.listState.Last()
	case km.AddEntry:
		return m.openAddForm()
	case km.ViewEntry, "enter":
		return m.openView()
	case km.EditNotes:
		return m.openEditNotes()
	case km.DeleteEntry:
		return m.openDeleteConfirm()
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	}

	m.ensureCursorVisible()
	return m, nil
}

// handleViewMode handles keys while a single entry is shown
func (m Model) handleViewMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case "esc", "enter", km.Quit, km.ViewEntry:
		m.uiState.SetMode(state.NormalMode)
	case km.EditNotes:
		return m.openEditNotes()
	case km.DeleteEntry:
		return m.openDeleteConfirm()
	case km.NextEntry, "down":
		m.listState.MoveDown()
		m.ensureCursorVisible()
	case km.PrevEntry, "up":
		m.listState.MoveUp()
		m.ensureCursorVisible()
	}
	return m, nil
}

// handleHelpMode closes the help screen
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case km.ShowHelp, km.Quit, "esc", "enter", "space":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) openView() (tea.Model, tea.Cmd) {
	if m.selected() == nil {
		m.notificationState.Warn("No entry selected")
		return m, nil
	}
	m.notificationState.Clear()
	m.uiState.SetMode(state.ViewEntryMode)
	return m, nil
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	var title, notes string
	m.form = forms.NewForm(m.config.KeyMappings.SaveForm,
		forms.NewTextInput(fieldTitle, "Title", "What should you remember?", &title),
		forms.NewTextArea(fieldNotes, "Notes", "Optional notes (markdown)", 0, &notes),
	)
	m.returnMode = m.uiState.Mode()
	m.uiState.SetMode(state.AddEntryMode)
	m.notificationState.Clear()
	m.resizeForm()
	return m, m.form.Init()
}

func (m Model) openEditNotes() (tea.Model, tea.Cmd) {
	entry := m.selected()
	if entry == nil {
		m.notificationState.Warn("No entry selected")
		return m, nil
	}

	notes := entry.Notes
	m.form = forms.NewForm(m.config.KeyMappings.SaveForm,
		forms.NewTextArea(fieldNotes, "Notes", "Notes (markdown)", 0, &notes),
	)
	m.targetID = entry.ID
	m.returnMode = m.uiState.Mode()
	m.uiState.SetMode(state.EditNotesMode)
	m.notificationState.Clear()
	m.resizeForm()
	return m, m.form.Init()
}

func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	entry := m.selected()
	if entry == nil {
		m.notificationState.Warn("No entry selected")
		return m, nil
	}

	// Default to No so a stray enter never deletes
	m.confirm = forms.NewConfirm(fieldConfirm,
		fmt.Sprintf("Delete entry #%d %q?", entry.ID, entry.Title),
		"Yes", "No", new(bool))
	m.confirm.Focus()
	m.targetID = entry.ID
	m.returnMode = m.uiState.Mode()
	m.uiState.SetMode(state.DeleteConfirmMode)
	m.notificationState.Clear()
	return m, nil
}

// handleFormMode forwards keys to the open form and acts on submit or abort
func (m Model) handleFormMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	switch m.form.State() {
	case forms.StateAborted:
		m.closeForm()
	case forms.StateCompleted:
		if m.uiState.Mode() == state.AddEntryMode {
			m.submitAddForm()
		} else {
			m.submitEditNotes()
		}
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.targetID = 0
	m.uiState.SetMode(m.returnMode)
	m.returnMode = state.NormalMode
}

func (m *Model) submitAddForm() {
	entry, err := m.entries.CreateEntry(m.ctx, entryservice.CreateEntryRequest{
		Title: m.fieldValue(fieldTitle),
		Notes: m.fieldValue(fieldNotes),
	})
	if errors.Is(err, models.ErrValidation) {
		// Keep the form open with what was typed
		m.form.Resume()
		m.notificationState.Warn("Please enter a title.")
		return
	}
	if err != nil {
		m.logger.Error("failed to create entry", "error", err)
		m.closeForm()
		m.notificationState.Error(fmt.Sprintf("Could not create entry: %v", err))
		return
	}

	m.closeForm()
	m.reload()
	m.listState.SelectID(entry.ID)
	m.ensureCursorVisible()
	m.notificationState.Info(fmt.Sprintf("Entry #%d created", entry.ID))
}

func (m *Model) submitEditNotes() {
	id := m.targetID
	err := m.entries.UpdateNotes(m.ctx, entryservice.UpdateNotesRequest{
		ID:    id,
		Notes: m.fieldValue(fieldNotes),
	})

	switch {
	case errors.Is(err, models.ErrNotFound):
		m.returnMode = state.NormalMode
		m.closeForm()
		m.reload()
		m.notificationState.Error(fmt.Sprintf("Entry #%d no longer exists", id))
	case err != nil:
		m.logger.Error("failed to update notes", "entry_id", id, "error", err)
		m.closeForm()
		m.notificationState.Error(fmt.Sprintf("Could not update notes: %v", err))
	default:
		m.closeForm()
		m.reload()
		m.listState.SelectID(id)
		m.ensureCursorVisible()
		m.notificationState.Info(fmt.Sprintf("Notes updated for entry #%d", id))
	}
}

// handleDeleteConfirm handles the yes/no dialog for deleting an entry
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteTarget()
	case "n", "N", "esc", m.config.KeyMappings.Quit:
		m.closeConfirm(m.returnMode)
	case "enter":
		if m.confirm != nil && m.confirm.Value() {
			m.deleteTarget()
		} else {
			m.closeConfirm(m.returnMode)
		}
	default:
		if m.confirm != nil {
			m.confirm.Update(msg)
		}
	}
	return m, nil
}

func (m *Model) closeConfirm(mode state.Mode) {
	m.confirm = nil
	m.targetID = 0
	m.returnMode = state.NormalMode
	m.uiState.SetMode(mode)
}

func (m *Model) deleteTarget() {
	id := m.targetID
	err := m.entries.DeleteEntry(m.ctx, id)

	// The entry is gone either way, so the view it was opened from is too
	m.closeConfirm(state.NormalMode)

	switch {
	case errors.Is(err, models.ErrNotFound):
		m.reload()
		m.notificationState.Error(fmt.Sprintf("Entry #%d no longer exists", id))
	case err != nil:
		m.logger.Error("failed to delete entry", "entry_id", id, "error", err)
		m.notificationState.Error(fmt.Sprintf("Could not delete entry: %v", err))
	default:
		m.reload()
		m.notificationState.Info(fmt.Sprintf("Entry #%d deleted", id))
	}
}

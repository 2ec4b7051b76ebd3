// Package tui is the interactive terminal front-end: a table of entries with
// forms for adding entries and editing notes.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/recall/internal/config"
	"github.com/thenoetrevino/recall/internal/models"
	entryservice "github.com/thenoetrevino/recall/internal/services/entry"
	"github.com/thenoetrevino/recall/internal/tui/forms"
	"github.com/thenoetrevino/recall/internal/tui/state"
)

// Form field keys
const (
	fieldTitle   = "title"
	fieldNotes   = "notes"
	fieldConfirm = "confirm"
)

// chromeHeight is the number of lines around the entry rows: header,
// notification line, column titles and status bar
const chromeHeight = 4

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	entries entryservice.Service
	config  *config.Config
	logger  *slog.Logger

	uiState           *state.UIState
	listState         *state.ListState
	notificationState *state.NotificationState

	// form is the open add or edit form, nil otherwise
	form *forms.Form
	// targetID is the entry being edited or deleted
	targetID int
	confirm  *forms.Confirm
	// returnMode is where a form or dialog goes back to when closed
	returnMode state.Mode
}

// New creates the model and loads the current entries. A nil cfg uses the
// default configuration.
func New(ctx context.Context, entries entryservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		ctx:               ctx,
		entries:           entries,
		config:            cfg,
		logger:            slog.Default(),
		uiState:           state.NewUIState(),
		listState:         state.NewListState(),
		notificationState: state.NewNotificationState(),
		returnMode:        state.NormalMode,
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// reload re-queries every entry. The list is never patched in place so the
// table always matches the store.
func (m *Model) reload() {
	entries, err := m.entries.GetAllEntries(m.ctx)
	if err != nil {
		m.logger.Error("failed to load entries", "error", err)
		m.notificationState.Error(fmt.Sprintf("Could not load entries: %v", err))
		return
	}
	m.listState.SetEntries(entries)
	m.ensureCursorVisible()
}

// selected returns the entry under the cursor
func (m Model) selected() *models.Entry {
	return m.listState.Selected()
}

// visibleRows returns how many entry rows fit on screen
func (m Model) visibleRows() int {
	return max(m.uiState.Height()-chromeHeight, 1)
}

func (m *Model) ensureCursorVisible() {
	m.uiState.EnsureVisible(m.listState.Cursor(), m.visibleRows())
}

// fieldValue returns the text typed into a form field
func (m Model) fieldValue(key string) string {
	if m.form == nil {
		return ""
	}
	switch field := m.form.Get(key).(type) {
	case *forms.TextInput:
		return field.Value()
	case *forms.TextArea:
		return field.Value()
	}
	return ""
}

// resizeForm fits the open form's fields to the terminal
func (m *Model) resizeForm() {
	if m.form == nil || m.uiState.Width() == 0 {
		return
	}
	width := max(m.uiState.Width()-4, 20)
	if input, ok := m.form.Get(fieldTitle).(*forms.TextInput); ok {
		input.SetWidth(width)
	}
	if area, ok := m.form.Get(fieldNotes).(*forms.TextArea); ok {
		height := 6
		if m.uiState.Mode() == state.EditNotesMode {
			height = max(m.uiState.Height()-chromeHeight-4, 3)
		}
		area.SetSize(width, height)
	}
}

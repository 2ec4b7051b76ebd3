// Package forms is a small form toolkit over bubbles text inputs, used for the
// add entry and edit notes screens.
package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// DefaultSubmitKey submits a form when no key is configured
const DefaultSubmitKey = "ctrl+s"

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	submitKey    string
}

// NewForm creates a new form with the given fields.
// submitKey completes the form from any field; esc aborts it.
func NewForm(submitKey string, fields ...Field) *Form {
	if submitKey == "" {
		submitKey = DefaultSubmitKey
	}
	return &Form{
		fields:    fields,
		state:     StateInProgress,
		submitKey: submitKey,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case f.submitKey:
			f.state = StateCompleted
			return f, nil

		case "esc":
			f.state = StateAborted
			return f, nil

		case "tab", "shift+tab":
			if len(f.fields) > 1 {
				return f, f.handleTabNavigation(keyMsg.String() == "shift+tab")
			}
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex = (f.focusedIndex + 1) % len(f.fields)
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	views := make([]string, len(f.fields))
	for i, field := range f.fields {
		views[i] = field.View()
	}
	return strings.Join(views, "\n\n")
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}

// Resume puts a completed form back in progress, keeping every value.
// Used when a submission is rejected and the user should fix it.
func (f *Form) Resume() {
	f.state = StateInProgress
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

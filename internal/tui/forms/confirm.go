package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

// Confirm is a yes/no confirmation field
type Confirm struct {
	key         string
	title       string
	affirmative string
	negative    string
	value       *bool
	focused     bool
	selection   bool // true = yes, false = no
}

// NewConfirm creates a new confirm field
func NewConfirm(key, title, affirmative, negative string, value *bool) *Confirm {
	selection := true
	if value != nil {
		selection = *value
	}

	return &Confirm{
		key:         key,
		title:       title,
		affirmative: affirmative,
		negative:    negative,
		value:       value,
		selection:   selection,
	}
}

// Update handles messages
func (c *Confirm) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "left", "h", "y":
			c.selection = true
		case "right", "l", "n":
			c.selection = false
		case "tab", "space":
			c.selection = !c.selection
		}

		if c.value != nil {
			*c.value = c.selection
		}
	}

	return c, nil
}

// View renders the confirm field
func (c *Confirm) View() string {
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))
	unselectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	yesStyle, noStyle := selectedStyle, unselectedStyle
	if !c.selection {
		yesStyle, noStyle = unselectedStyle, selectedStyle
	}

	return renderTitle(c.title, c.focused) + "\n" +
		yesStyle.Render(" "+c.affirmative+" ") + "  " + noStyle.Render(" "+c.negative+" ")
}

// Focus focuses the confirm field
func (c *Confirm) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Confirm) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Confirm) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Confirm) Key() string {
	return c.key
}

// Value returns the current selection
func (c *Confirm) Value() bool {
	return c.selection
}

package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

// NoNotesPlaceholder is shown in place of empty notes
const NoNotesPlaceholder = "No notes"

type NotesProps struct {
	Notes string
	Width int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders entry notes as markdown. Notes that fail to render are
// returned as-is; empty notes become a muted placeholder.
func RenderNotes(props NotesProps) string {
	if strings.TrimSpace(props.Notes) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render(NoNotesPlaceholder)
	}

	width := max(props.Width, 20)
	renderer, err := getRenderer(width)
	if err != nil {
		return props.Notes
	}
	rendered, err := renderer.Render(props.Notes)
	if err != nil {
		return props.Notes
	}
	return strings.TrimSpace(rendered)
}

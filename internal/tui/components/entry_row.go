package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/recall/internal/models"
	"github.com/thenoetrevino/recall/internal/tui/theme"
)

const (
	dateColumnWidth = len(models.DateLayout)
	timeColumnWidth = len(models.TimeLayout)
	columnGap       = "  "
	// MinTitleWidth keeps a few title characters visible on narrow terminals
	MinTitleWidth = 8
)

type EntryRowProps struct {
	Entry    *models.Entry
	IDWidth  int
	Width    int
	Selected bool
}

// TitleWidth returns the space left for the title column in a row of width
func TitleWidth(width, idWidth int) int {
	fixed := 2 + idWidth + dateColumnWidth + timeColumnWidth + 3*len(columnGap)
	return max(width-fixed, MinTitleWidth)
}

// IDWidth returns the widest ID in entries, at least the header width
func IDWidth(entries []*models.Entry) int {
	w := len("ID")
	for _, entry := range entries {
		w = max(w, len(strconv.Itoa(entry.ID)))
	}
	return w
}

// RenderEntryHeader renders the column titles above the entry rows
func RenderEntryHeader(width, idWidth int) string {
	line := "  " + pad("ID", idWidth) + columnGap +
		pad("Title", TitleWidth(width, idWidth)) + columnGap +
		pad("Date", dateColumnWidth) + columnGap + "Time"
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(line)
}

// RenderEntryRow renders one entry as a table row. Long titles are truncated.
func RenderEntryRow(props EntryRowProps) string {
	titleWidth := TitleWidth(props.Width, props.IDWidth)
	title := truncate.StringWithTail(singleLine(props.Entry.Title), uint(titleWidth), "…")

	marker := "  "
	if props.Selected {
		marker = "> "
	}

	line := marker + pad(strconv.Itoa(props.Entry.ID), props.IDWidth) + columnGap +
		pad(title, titleWidth) + columnGap +
		pad(props.Entry.Date, dateColumnWidth) + columnGap +
		pad(props.Entry.Time, timeColumnWidth)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if props.Selected {
		style = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.SelectedFg)).
			Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(line)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

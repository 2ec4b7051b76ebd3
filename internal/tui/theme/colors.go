// Package theme exposes the active color scheme to the TUI renderers.
package theme

import "github.com/thenoetrevino/recall/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Title         string
	Subtle        string
	Normal        string
	Border        string
	Create        string
	Edit          string
	Delete        string
	SelectedFg    string
	SelectedBg    string
	InfoFg        string
	WarningFg     string
	ErrorFg       string
	StatusBarBg   string
	StatusBarText string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Border = colors.Border
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	WarningFg = colors.WarningFg
	ErrorFg = colors.ErrorFg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}

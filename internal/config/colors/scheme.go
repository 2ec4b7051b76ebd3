// Package colors holds the theme presets and the merge rules for custom colors.
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the header, selections, and highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add entry form
	Edit   string `yaml:"edit"`   // notes editor
	Delete string `yaml:"delete"` // delete confirmation

	// List colors
	Border     string `yaml:"border"`
	SelectedFg string `yaml:"selected_fg"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line colors
	InfoFg        string `yaml:"info_fg"`
	WarningFg     string `yaml:"warning_fg"`
	ErrorFg       string `yaml:"error_fg"`
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default preset.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(*preset, false)
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	c.fillFrom(other, true)
}

func (c *ColorScheme) fillFrom(src ColorScheme, override bool) {
	for _, f := range c.fields(&src) {
		if *f.src == "" {
			continue
		}
		if override || *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst, src *string
}

func (c *ColorScheme) fields(src *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Accent, &src.Accent},
		{&c.Create, &src.Create},
		{&c.Edit, &src.Edit},
		{&c.Delete, &src.Delete},
		{&c.Border, &src.Border},
		{&c.SelectedFg, &src.SelectedFg},
		{&c.SelectedBg, &src.SelectedBg},
		{&c.Title, &src.Title},
		{&c.Subtle, &src.Subtle},
		{&c.Normal, &src.Normal},
		{&c.InfoFg, &src.InfoFg},
		{&c.WarningFg, &src.WarningFg},
		{&c.ErrorFg, &src.ErrorFg},
		{&c.StatusBarBg, &src.StatusBarBg},
		{&c.StatusBarText, &src.StatusBarText},
	}
}

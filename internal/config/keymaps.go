package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Entries
	AddEntry    string `yaml:"add_entry"`
	ViewEntry   string `yaml:"view_entry"`
	EditNotes   string `yaml:"edit_notes"`
	DeleteEntry string `yaml:"delete_entry"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevEntry string `yaml:"prev_entry"`
	NextEntry string `yaml:"next_entry"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddEntry:    "a",
		ViewEntry:   "v",
		EditNotes:   "e",
		DeleteEntry: "d",

		SaveForm: "ctrl+s",

		PrevEntry: "k",
		NextEntry: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddEntry == "" {
		k.AddEntry = defaults.AddEntry
	}
	if k.ViewEntry == "" {
		k.ViewEntry = defaults.ViewEntry
	}
	if k.EditNotes == "" {
		k.EditNotes = defaults.EditNotes
	}
	if k.DeleteEntry == "" {
		k.DeleteEntry = defaults.DeleteEntry
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevEntry == "" {
		k.PrevEntry = defaults.PrevEntry
	}
	if k.NextEntry == "" {
		k.NextEntry = defaults.NextEntry
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

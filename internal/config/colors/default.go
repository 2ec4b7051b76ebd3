package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		Border:     "#585858",
		SelectedFg: "#FFFFFF",
		SelectedBg: "#5F5FAF",

		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:        "#00AFFF",
		WarningFg:     "#FFD700",
		ErrorFg:       "#FF5F5F",
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}

package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		Border:     "#585858",
		SelectedFg: "#000000",
		SelectedBg: "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:        "#FFFFFF",
		WarningFg:     "#FFFFFF",
		ErrorFg:       "#FFFFFF",
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}

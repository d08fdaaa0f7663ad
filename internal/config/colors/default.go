package colors

// Default is the teal board scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#00AF87",

		ColumnBorder:   "#5F8787",
		CardBorder:     "#444444",
		CardBackground: "#1C2526",
		SelectedBorder: "#00D7AF",
		SelectedBg:     "#2E3B3C",
		OwnCard:        "#FFAF5F",

		ModalBorder: "#00AF87",
		Error:       "#FF5F5F",
		Busy:        "#00D7AF",

		Title:  "#87D7D7",
		Subtle: "#6C6C6C",
		Normal: "#DADADA",
	}
}

package colors

// Monochrome uses only greys
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		ColumnBorder:   "#BCBCBC",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		OwnCard:        "#FFFFFF",

		ModalBorder: "#FFFFFF",
		Error:       "#FFFFFF",
		Busy:        "#BCBCBC",

		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",
	}
}

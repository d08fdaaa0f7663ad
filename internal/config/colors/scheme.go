package colors

// ColorScheme is the theme section of the config file. Empty values fall
// back to the named preset.
type ColorScheme struct {
	Preset string `yaml:"preset"`

	// Accent marks the focused button and the selected column title
	Accent string `yaml:"accent"`

	// Board
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	OwnCard        string `yaml:"own_card"` // "by you" attribution

	// Modals
	ModalBorder string `yaml:"modal_border"`
	Error       string `yaml:"error"`
	Busy        string `yaml:"busy"` // fetch spinner

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
}

// Preset returns the named scheme, the default one for unknown names
func Preset(name string) *ColorScheme {
	if name == "monochrome" {
		return Monochrome()
	}
	return Default()
}

// fields lists every color value, in declaration order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.OwnCard,
		&c.ModalBorder, &c.Error, &c.Busy,
		&c.Title, &c.Subtle, &c.Normal,
	}
}

// ApplyDefaults fills every empty value from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := Preset(c.Preset).fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *preset[i]
		}
	}
}

// MergeFrom overrides values with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, field := range c.fields() {
		if *src[i] != "" {
			*field = *src[i]
		}
	}
}

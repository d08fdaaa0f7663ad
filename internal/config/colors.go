package config

import "github.com/thenoetrevino/todoboard/internal/config/colors"

// ColorScheme is the theme section of the config file
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the teal board scheme
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns the grey-only scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

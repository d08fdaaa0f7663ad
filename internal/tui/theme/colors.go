// Package theme holds the colors the renderers read at draw time.
package theme

import "github.com/thenoetrevino/todoboard/internal/config"

// Current theme colors, set by Init
var (
	Subtle         string
	Normal         string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	OwnCard        string
	Busy           string
)

// Init copies the draw-time colors out of scheme
func Init(scheme config.ColorScheme) {
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	CardBg = scheme.CardBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	OwnCard = scheme.OwnCard
	Busy = scheme.Busy
}

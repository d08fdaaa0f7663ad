// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// Compose stacks the base view and any non-nil overlays into one frame.
// Later layers draw over earlier ones.
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, layer := range overlays {
		if layer != nil {
			stack = append(stack, layer)
		}
	}
	if len(stack) == 1 {
		return base
	}
	return lipgloss.NewCanvas(stack...).Render()
}

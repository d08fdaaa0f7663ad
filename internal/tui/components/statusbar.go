package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
)

// StatusBarProps is what the status bar shows
type StatusBarProps struct {
	Width int
	User  string // signed-in user, empty when unknown
	State string // current phase, e.g. "Loading board"
	Hints string // key hints for the right side
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "todoboard · {user} · {state}"
// Right side: key hints
func RenderStatusBar(props StatusBarProps) string {
	left := []string{"todoboard"}
	if props.User != "" {
		left = append(left, props.User)
	}
	if props.State != "" {
		left = append(left, props.State)
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(strings.Join(left, " · "))
	rightRendered := style.Render(props.Hints)

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}

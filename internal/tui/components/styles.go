// Package components provides reusable UI components and styles.
// Styles start from the default scheme; InitStyles re-themes them.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/config/colors"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, modal headers)
	TitleStyle lipgloss.Style

	// ModalBoxStyle is the frame shared by the login, user info and alert modals
	ModalBoxStyle lipgloss.Style

	// ErrorBoxStyle frames the fetch error alert
	ErrorBoxStyle lipgloss.Style

	// ButtonStyle and ActiveButtonStyle render modal actions
	ButtonStyle       lipgloss.Style
	ActiveButtonStyle lipgloss.Style

	// SubtleStyle renders hints and placeholders
	SubtleStyle lipgloss.Style

	// ErrorTextStyle renders inline error text
	ErrorTextStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		PaddingBottom(1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		BorderBackground(lipgloss.Color(scheme.CardBackground)).
		Background(lipgloss.Color(scheme.CardBackground)).
		Padding(0).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	ModalBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ModalBorder)).
		Padding(1, 2)

	ErrorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Error)).
		Padding(1, 2)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 2)

	ActiveButtonStyle = ButtonStyle.
		Foreground(lipgloss.Color(scheme.Normal)).
		Background(lipgloss.Color(scheme.Accent)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Error))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Align(lipgloss.Center)
}

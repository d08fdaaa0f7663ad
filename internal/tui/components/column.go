package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ColumnView is the presented unit for one board column.
// It is built fresh on every render and never patched in place: once
// detached it must not be drawn again.
type ColumnView struct {
	column       models.Column
	user         *models.UserInfo
	attached     bool
	scrollOffset int
}

// NewColumnView creates an attached view seeded with the column and the
// identity of the user viewing it
func NewColumnView(column models.Column, user *models.UserInfo) *ColumnView {
	return &ColumnView{
		column:   column,
		user:     user,
		attached: true,
	}
}

// ID returns the identifier of the column this view presents
func (v *ColumnView) ID() types.ColumnID {
	return v.column.ID
}

// Column returns the column data the view was seeded with
func (v *ColumnView) Column() models.Column {
	return v.column
}

// User returns the identity the view was seeded with
func (v *ColumnView) User() *models.UserInfo {
	return v.user
}

// Attached reports whether the view is part of the displayed board
func (v *ColumnView) Attached() bool {
	return v.attached
}

// Detach removes the view from the display
func (v *ColumnView) Detach() {
	v.attached = false
}

// Render renders the column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// Parameters:
//   - selected: whether this column is currently selected
//   - selectedCard: index of the selected card (-1 if none)
//   - height: fixed total height of the column (0 for auto)
func (v *ColumnView) Render(selected bool, selectedCard int, height int) string {
	if !v.attached {
		return ""
	}

	cards := v.column.Cards
	header := renderColumnHeader(v.column)

	var content string
	if len(cards) == 0 {
		content = renderEmptyColumnContent(header)
	} else {
		maxVisible := visibleCardCount(height)
		v.ensureVisible(selectedCard, maxVisible)

		endIdx := min(v.scrollOffset+maxVisible, len(cards))

		var b strings.Builder
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(renderScrollIndicator(v.scrollOffset > 0, "▲ more above"))
		for i, card := range cards[v.scrollOffset:endIdx] {
			idx := v.scrollOffset + i
			b.WriteString(RenderCard(card, v.user, selected && idx == selectedCard))
			b.WriteString("\n")
		}
		if endIdx < len(cards) {
			b.WriteString(IndicatorStyle.Render("▼ more below"))
		}
		content = strings.TrimSuffix(b.String(), "\n")
	}

	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(height - 2)
	}

	return style.Render(content)
}

// ensureVisible scrolls so the selected card stays on screen
func (v *ColumnView) ensureVisible(selectedCard int, maxVisible int) {
	if selectedCard < 0 {
		return
	}
	if selectedCard < v.scrollOffset {
		v.scrollOffset = selectedCard
	}
	if selectedCard >= v.scrollOffset+maxVisible {
		v.scrollOffset = selectedCard - maxVisible + 1
	}
	v.scrollOffset = max(0, min(v.scrollOffset, len(v.column.Cards)-1))
}

// visibleCardCount is how many cards fit in a column of the given height
func visibleCardCount(height int) int {
	if height <= 0 {
		return 1 << 30
	}
	available := height - columnBorderOverhead - headerLines - topIndicatorLines - 1
	return max(available/CardHeight, 1)
}

func renderColumnHeader(column models.Column) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, len(column.Cards)))
}

func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}

func renderEmptyColumnContent(header string) string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Padding(1, 0)
	return header + "\n" + emptyStyle.Render("No cards")
}

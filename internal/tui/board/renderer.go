// Package board keeps the set of column views that mirror the most
// recently fetched board.
package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// Renderer owns the displayed column views.
//
// Every Render is a full replace: all current views are detached in
// display order and a new view is built for each column of the new board.
// Renderer is not safe for concurrent use; it belongs to the bubbletea
// Update loop.
type Renderer struct {
	views       []*components.ColumnView
	renders     int
	selectedCol int
	selectedRow int
}

// NewRenderer creates a Renderer with no views.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render replaces every displayed column view with fresh views built from
// board, each seeded with user.
func (r *Renderer) Render(board *models.Board, user *models.UserInfo) {
	for _, v := range r.views {
		v.Detach()
	}
	r.views = nil

	var columns []models.Column
	if board != nil {
		columns = board.Columns
	}

	views := make([]*components.ColumnView, 0, len(columns))
	for _, col := range columns {
		views = append(views, components.NewColumnView(col, user))
	}
	r.views = views
	r.renders++
	r.selectedCol = 0
	r.selectedRow = 0
}

// Reset detaches every view and forgets that any board was rendered.
func (r *Renderer) Reset() {
	for _, v := range r.views {
		v.Detach()
	}
	r.views = nil
	r.renders = 0
	r.selectedCol = 0
	r.selectedRow = 0
}

// IDs returns the identifiers of the displayed views in display order.
func (r *Renderer) IDs() []types.ColumnID {
	ids := make([]types.ColumnID, len(r.views))
	for i, v := range r.views {
		ids[i] = v.ID()
	}
	return ids
}

// Views returns the displayed views in display order.
func (r *Renderer) Views() []*components.ColumnView {
	return r.views
}

// RenderCount returns how many times Render has run.
func (r *Renderer) RenderCount() int {
	return r.renders
}

// Empty reports whether no columns are displayed.
func (r *Renderer) Empty() bool {
	return len(r.views) == 0
}

// SelectedColumn returns the index of the column under the cursor.
func (r *Renderer) SelectedColumn() int {
	return r.selectedCol
}

// SelectedCard returns the index of the card under the cursor, -1 when the
// selected column has no cards.
func (r *Renderer) SelectedCard() int {
	if r.Empty() || len(r.views[r.selectedCol].Column().Cards) == 0 {
		return -1
	}
	return r.selectedRow
}

// MoveColumn moves the cursor delta columns, clamping at the edges.
// The card cursor is clamped to the new column.
func (r *Renderer) MoveColumn(delta int) {
	if r.Empty() {
		return
	}
	r.selectedCol = clamp(r.selectedCol+delta, 0, len(r.views)-1)
	r.selectedRow = clamp(r.selectedRow, 0, max(len(r.views[r.selectedCol].Column().Cards)-1, 0))
}

// MoveCard moves the cursor delta cards within the selected column.
func (r *Renderer) MoveCard(delta int) {
	if r.Empty() {
		return
	}
	n := len(r.views[r.selectedCol].Column().Cards)
	if n == 0 {
		return
	}
	r.selectedRow = clamp(r.selectedRow+delta, 0, n-1)
}

// View renders size columns starting at offset, each height rows tall.
func (r *Renderer) View(offset, size, height int) string {
	if r.Empty() {
		return components.SubtleStyle.Render("No columns")
	}

	offset = clamp(offset, 0, len(r.views)-1)
	end := min(offset+max(size, 1), len(r.views))

	var rendered []string
	if offset > 0 {
		rendered = append(rendered, components.IndicatorStyle.Render("◀"))
	}
	for i := offset; i < end; i++ {
		selected := i == r.selectedCol
		card := -1
		if selected {
			card = r.SelectedCard()
		}
		rendered = append(rendered, r.views[i].Render(selected, card, height), " ")
	}
	if end < len(r.views) {
		rendered = append(rendered, components.IndicatorStyle.Render("▶"))
	}

	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

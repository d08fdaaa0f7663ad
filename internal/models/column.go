package models

import "github.com/thenoetrevino/todoboard/internal/types"

// Column represents one board column (e.g., "To Do", "In Progress", "Done").
// Columns render left-to-right in the order the API returns them.
type Column struct {
	ID    types.ColumnID `json:"id"`
	Title string         `json:"title"`
	Cards []Card         `json:"cards"`
}

// CardCount returns the number of cards in the column
func (c Column) CardCount() int {
	return len(c.Cards)
}

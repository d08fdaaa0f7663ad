package models

import (
	"fmt"

	"github.com/thenoetrevino/todoboard/internal/types"
)

// Board is the ordered sequence of columns for one user.
// A Board is a snapshot: it is replaced, never merged.
type Board struct {
	Columns []Column
}

// UserData is the payload of the columns endpoint.
// UserInfo is carried by the API but identity always comes from the
// dedicated identity request.
type UserData struct {
	Columns  []Column  `json:"columns"`
	UserInfo *UserInfo `json:"userInfo,omitempty"`
}

// NewBoard builds a Board from the columns endpoint payload
func NewBoard(data UserData) *Board {
	columns := data.Columns
	if columns == nil {
		columns = []Column{}
	}
	return &Board{Columns: columns}
}

// IDs returns the column identifiers in display order
func (b *Board) IDs() []types.ColumnID {
	if b == nil {
		return nil
	}
	ids := make([]types.ColumnID, len(b.Columns))
	for i, col := range b.Columns {
		ids[i] = col.ID
	}
	return ids
}

// Validate checks that every column has an identifier and that no
// identifier appears twice within the snapshot.
func (b *Board) Validate() error {
	seen := make(map[types.ColumnID]int, len(b.Columns))
	for i, col := range b.Columns {
		if col.ID == "" {
			return fmt.Errorf("%w: column at position %d", ErrMissingColumnID, i)
		}
		if prev, ok := seen[col.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateColumnID, col.ID, prev, i)
		}
		seen[col.ID] = i
	}
	return nil
}

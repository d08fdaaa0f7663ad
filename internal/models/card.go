package models

import "github.com/thenoetrevino/todoboard/internal/types"

// Card is a single item inside a column
type Card struct {
	ID       types.CardID `json:"id"`
	Title    string       `json:"title"`
	Contents string       `json:"contents,omitempty"`
	Author   string       `json:"author,omitempty"`
}

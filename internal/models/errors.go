package models

import "errors"

// Board snapshot validation errors
var (
	// ErrMissingColumnID indicates a column arrived without an identifier
	ErrMissingColumnID = errors.New("column has no identifier")

	// ErrDuplicateColumnID indicates two columns in one snapshot share an identifier
	ErrDuplicateColumnID = errors.New("duplicate column identifier")
)

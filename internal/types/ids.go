package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID types give semantic meaning to the identifiers the board API hands out.
// The API is not consistent about quoting them, so both accept either a JSON
// string or a JSON number and always marshal back as a string.

// ColumnID identifies a column within one board snapshot
type ColumnID string

// CardID identifies a card within a column
type CardID string

// UserID identifies the signed-in user
type UserID string

func (id ColumnID) String() string { return string(id) }
func (id CardID) String() string   { return string(id) }
func (id UserID) String() string   { return string(id) }

// UnmarshalJSON accepts "c1" as well as 42
func (id *ColumnID) UnmarshalJSON(data []byte) error {
	s, err := decodeID(data)
	if err != nil {
		return fmt.Errorf("column id: %w", err)
	}
	*id = ColumnID(s)
	return nil
}

// UnmarshalJSON accepts "card-1" as well as 7
func (id *CardID) UnmarshalJSON(data []byte) error {
	s, err := decodeID(data)
	if err != nil {
		return fmt.Errorf("card id: %w", err)
	}
	*id = CardID(s)
	return nil
}

// UnmarshalJSON accepts "u1" as well as 1
func (id *UserID) UnmarshalJSON(data []byte) error {
	s, err := decodeID(data)
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(s)
	return nil
}

// decodeID turns a JSON string or number into its string form.
// null decodes to the empty string.
func decodeID(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return "", fmt.Errorf("invalid identifier %s", data)
	}
	return n.String(), nil
}

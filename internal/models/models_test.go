package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/thenoetrevino/todoboard/internal/types"
)

func TestBoard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr error
	}{
		{name: "empty board", columns: nil},
		{name: "unique ids", columns: []Column{{ID: "c1"}, {ID: "c2"}}},
		{name: "duplicate ids", columns: []Column{{ID: "c1"}, {ID: "c1"}}, wantErr: ErrDuplicateColumnID},
		{name: "missing id", columns: []Column{{ID: "c1"}, {Title: "untitled"}}, wantErr: ErrMissingColumnID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Board{Columns: tt.columns}).Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewBoard_KeepsColumnOrder(t *testing.T) {
	payload := `{"columns":[{"id":"c2","title":"Doing"},{"id":1,"title":"Todo","cards":[{"id":9,"title":"write docs"}]}],"userInfo":{"id":"u1","name":"Ann"}}`

	var data UserData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	board := NewBoard(data)
	ids := board.IDs()
	want := []types.ColumnID{"c2", "1"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if board.Columns[1].CardCount() != 1 {
		t.Errorf("CardCount() = %d, want 1", board.Columns[1].CardCount())
	}
	if board.Columns[1].Cards[0].ID != "9" {
		t.Errorf("card id = %q, want 9", board.Columns[1].Cards[0].ID)
	}
}

func TestNewBoard_NilColumns(t *testing.T) {
	board := NewBoard(UserData{})
	if board.Columns == nil {
		t.Fatal("NewBoard should never return nil columns")
	}
	if len(board.IDs()) != 0 {
		t.Errorf("IDs() = %v, want empty", board.IDs())
	}
}

func TestUserInfo_DisplayName(t *testing.T) {
	var nilUser *UserInfo
	if got := nilUser.DisplayName(); got != "" {
		t.Errorf("nil DisplayName() = %q, want empty", got)
	}
	if got := (&UserInfo{ID: "u1"}).DisplayName(); got != "u1" {
		t.Errorf("DisplayName() = %q, want u1", got)
	}
	if got := (&UserInfo{ID: "u1", Name: "Ann"}).DisplayName(); got != "Ann" {
		t.Errorf("DisplayName() = %q, want Ann", got)
	}
}

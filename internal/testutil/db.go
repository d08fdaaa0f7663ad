// Package testutil holds database helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todoboard/internal/database"
)

// SetupTestDB opens a migrated in-memory database, closed when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CredentialRows counts the rows in the credentials table
func CredentialRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM credentials`).Scan(&n); err != nil {
		t.Fatalf("Failed to count credentials: %v", err)
	}
	return n
}

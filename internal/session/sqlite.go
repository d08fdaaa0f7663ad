package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// tokenKey is the row key the session token is stored under
const tokenKey = "session_token"

// SQLiteStore keeps the credential in the credentials table.
// Every call goes to the database; nothing is cached.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already-migrated database
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (Credential, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load credential: %w", err)
	}
	if value == "" {
		return "", false, nil
	}
	return Credential(value), true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, cred Credential) error {
	if cred == "" {
		return ErrEmptyCredential
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, tokenKey, string(cred))
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)

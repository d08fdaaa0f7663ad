package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential in process memory.
// Used for --ephemeral runs and tests.
type MemoryStore struct {
	mu   sync.Mutex
	cred Credential
}

// NewMemoryStore returns a store seeded with cred ("" means absent)
func NewMemoryStore(cred Credential) *MemoryStore {
	return &MemoryStore{cred: cred}
}

func (s *MemoryStore) Load(ctx context.Context) (Credential, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, s.cred != "", nil
}

func (s *MemoryStore) Save(ctx context.Context, cred Credential) error {
	if cred == "" {
		return ErrEmptyCredential
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = ""
	return nil
}

var _ Store = (*MemoryStore)(nil)

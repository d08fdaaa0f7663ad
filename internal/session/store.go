// Package session holds the persisted credential that gates access to the
// board. The credential is an opaque string: present or absent.
package session

import (
	"context"
	"errors"
)

// Credential is an opaque session token
type Credential string

// Errors returned by Store implementations
var (
	ErrEmptyCredential = errors.New("credential cannot be empty")
)

// Store persists the current credential.
//
// Contract:
//   - Load reports ok=false when no credential is stored.
//   - Save replaces any stored credential; an empty credential is rejected.
//   - Clear removes the credential (sign-out). A Load after Clear reports
//     ok=false; implementations must not serve a cached value.
//
// A single flow controller owns writes, so no write contention is expected.
type Store interface {
	Load(ctx context.Context) (cred Credential, ok bool, err error)
	Save(ctx context.Context, cred Credential) error
	Clear(ctx context.Context) error
}

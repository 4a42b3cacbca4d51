package session

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by [Credentials.Load] when no credential pair is
// persisted. Callers are expected to route to the login flow.
var ErrNoCredential = errors.New("no persisted credential")

// Credential is the externally stored token/role pair that survives restarts.
// Both fields are required for session restoration to succeed.
type Credential struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Credentials abstracts where the persisted credential lives. Implementations
// must be safe for concurrent use; Clear must be idempotent.
type Credentials interface {
	Load(ctx context.Context) (Credential, error)
	Store(ctx context.Context, cred Credential) error
	Clear(ctx context.Context) error
}

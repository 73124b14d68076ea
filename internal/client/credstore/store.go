// Package credstore persists the client's durable credential record: the
// opaque bearer token together with its issuance timestamp. Exactly one
// record exists at a time, kept under a single well-known key.
//
// The store is owned exclusively by the session manager; no other component
// writes to it.
package credstore

import (
	"context"
	"time"
)

// StoredCredential is the durable projection of an authenticated session.
type StoredCredential struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// Store is durable key-value persistence for the current credential.
//
// Contract:
//   - Save overwrites any prior value.
//   - Load reports a missing or corrupted record as ok=false, never as an
//     error: session restoration must never block application startup.
//   - Clear erases any persisted credential; clearing an empty store succeeds.
type Store interface {
	Save(ctx context.Context, cred StoredCredential) error
	Load(ctx context.Context) (StoredCredential, bool)
	Clear(ctx context.Context) error
}

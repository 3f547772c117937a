package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by TokenStore.Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// TokenStore is a read-only view of the external key-value store holding
// token records. Implementations: Redis (production) or in-memory (local dev).
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	// Any other error means the store could not be reached or answered badly.
	Get(ctx context.Context, key string) ([]byte, error)
	// Ping reports whether the store is currently reachable.
	Ping(ctx context.Context) error
}

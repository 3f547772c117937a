package repository

import (
	"context"
)

// memoryTokenStore is filled once at construction and only read afterwards,
// so concurrent Gets need no locking.
type memoryTokenStore struct {
	entries map[string][]byte
}

// NewMemoryTokenStore returns a store holding a private copy of seed.
func NewMemoryTokenStore(seed map[string]string) TokenStore {
	entries := make(map[string][]byte, len(seed))
	for k, v := range seed {
		entries[k] = []byte(v)
	}
	return &memoryTokenStore{entries: entries}
}

func (s *memoryTokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Callers get their own copy so the seeded bytes stay immutable.
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *memoryTokenStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

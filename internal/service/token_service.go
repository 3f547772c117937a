package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tokengate/internal/model"
	"tokengate/internal/repository"
)

type TokenService interface {
	// Lookup returns the record stored under key. Errors are
	// ErrPublicKeyMissing, ErrTokenNotFound, or wrap ErrStoreUnavailable.
	Lookup(ctx context.Context, key model.LookupKey) (*model.TokenRecord, error)
	// Ready reports whether the backing store answers.
	Ready(ctx context.Context) error
}

type tokenService struct {
	store         repository.TokenStore
	lookupTimeout time.Duration
}

// NewTokenService wires a lookup service over store. Every store call is
// bounded by lookupTimeout in addition to the caller's context.
func NewTokenService(store repository.TokenStore, lookupTimeout time.Duration) TokenService {
	return &tokenService{
		store:         store,
		lookupTimeout: lookupTimeout,
	}
}

func (s *tokenService) Lookup(ctx context.Context, key model.LookupKey) (*model.TokenRecord, error) {
	if key == "" {
		return nil, ErrPublicKeyMissing
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.store.Get(ctx, key.String())
	switch {
	case err == nil:
		return &model.TokenRecord{Key: key, Data: data}, nil
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrTokenNotFound
	default:
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

func (s *tokenService) Ready(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *tokenService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.lookupTimeout)
}

// ensure tokenService implements TokenService
var _ TokenService = (*tokenService)(nil)

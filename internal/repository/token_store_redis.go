package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client redis.UniversalClient
}

func NewRedisTokenStore(client redis.UniversalClient) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *redisTokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

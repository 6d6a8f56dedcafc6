package redis

import (
	"context"

	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/errors"

	"github.com/redis/go-redis/v9"
)

const backendName = "redis"

// kvStore implements repository.KeyValueStore with plain string keys and no expiry.
type kvStore struct {
	client redis.Cmdable
}

// NewKVStore is the constructor for kvStore.
func NewKVStore(client redis.Cmdable) repository.KeyValueStore {
	return &kvStore{client: client}
}

// Get returns the value stored under key.
func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewStorageError(backendName, "get", err)
	}

	return value, true, nil
}

// Set stores value under key.
func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return domainerrors.NewStorageError(backendName, "set", err)
	}

	return nil
}

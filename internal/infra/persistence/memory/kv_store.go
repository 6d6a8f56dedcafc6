// Package memory provides an in-process key-value store.
package memory

import (
	"context"
	"sync"

	"pos/internal/domain/repository"
)

// KVStore keeps values in a map guarded by a RWMutex.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]

	return value, ok, nil
}

// Set stores value under key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

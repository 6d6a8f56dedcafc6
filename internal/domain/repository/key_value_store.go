// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// KeyValueStore is the durable storage contract baskets are persisted through.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

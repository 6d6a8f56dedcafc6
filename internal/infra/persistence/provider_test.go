package persistence

import (
	"io"
	"log/slog"
	"testing"

	"pos/config"
	"pos/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newStoreParams(t *testing.T, cfg *config.Config) StoreParams {
	return StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewKeyValueStore_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Basket.Storage = config.StorageMemory

	store, err := NewKeyValueStore(newStoreParams(t, cfg))
	require.NoError(t, err)
	assert.IsType(t, &memory.KVStore{}, store)
}

func TestNewKeyValueStore_RedisRequiresValidURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Basket.Storage = config.StorageRedis
	cfg.Redis = &config.RedisConfig{URL: "://not-a-url"}

	store, err := NewKeyValueStore(newStoreParams(t, cfg))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewKeyValueStore_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Basket.Storage = config.StoragePostgres

	store, err := NewKeyValueStore(newStoreParams(t, cfg))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewKeyValueStore_UnknownStorage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Basket.Storage = "s3"

	store, err := NewKeyValueStore(newStoreParams(t, cfg))
	assert.Error(t, err)
	assert.Nil(t, store)
}

// Package persistence maps baskets onto the configured key-value storage.
package persistence

import (
	"context"
	"encoding/json"
	"time"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/errors"
	"pos/internal/infra/persistence/model"
)

const (
	storageOpGet = "get"
	storageOpSet = "set"
)

// basketRepository implements repository.BasketRepository on top of a KeyValueStore.
type basketRepository struct {
	kv        repository.KeyValueStore
	keyPrefix string
	metrics   service.BasketMetrics
}

// NewBasketRepository is the constructor for basketRepository.
func NewBasketRepository(kv repository.KeyValueStore, cfg *config.Config, metrics service.BasketMetrics) repository.BasketRepository {
	return &basketRepository{
		kv:        kv,
		keyPrefix: cfg.Basket.KeyPrefix,
		metrics:   metrics,
	}
}

// BasketKey returns the storage key holding the basket of owner.
func BasketKey(prefix, owner string) string {
	return prefix + ":" + owner
}

// Load reads and decodes the basket of owner.
func (repo *basketRepository) Load(ctx context.Context, owner string) ([]entity.BasketItem, error) {
	start := time.Now()
	raw, found, err := repo.kv.Get(ctx, BasketKey(repo.keyPrefix, owner))
	repo.metrics.ObserveStorage(storageOpGet, time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read basket")
	}
	if !found || raw == "" {
		return []entity.BasketItem{}, nil
	}

	var records []model.BasketItemRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, errors.Join(repository.ErrCorruptBasket, err)
	}

	return model.ToBasketItems(records), nil
}

// Save encodes and writes the full basket of owner.
func (repo *basketRepository) Save(ctx context.Context, owner string, items []entity.BasketItem) error {
	payload, err := json.Marshal(model.FromBasketItems(items))
	if err != nil {
		return errors.Wrap(err, "failed to encode basket")
	}

	start := time.Now()
	err = repo.kv.Set(ctx, BasketKey(repo.keyPrefix, owner), string(payload))
	repo.metrics.ObserveStorage(storageOpSet, time.Since(start), err)
	if err != nil {
		return errors.Wrap(err, "failed to write basket")
	}

	return nil
}

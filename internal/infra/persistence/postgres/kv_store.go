package postgres

import (
	"context"

	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const backendName = "postgres"

// kvStore implements repository.KeyValueStore on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore is the constructor for kvStore.
func NewKVStore(db *gorm.DB) repository.KeyValueStore {
	return &kvStore{db: db}
}

// Migrate creates or updates the kv_entries table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.KeyValueModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate kv_entries")
	}

	return nil
}

// Get retrieves the value stored under key.
func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KeyValueModel

	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, domainerrors.NewStorageError(backendName, "get", err)
	}

	return entry.Value, true, nil
}

// Set upserts value under key.
func (s *kvStore) Set(ctx context.Context, key, value string) error {
	entry := &model.KeyValueModel{Key: key, Value: value}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error; err != nil {
		return domainerrors.NewStorageError(backendName, "set", err)
	}

	return nil
}

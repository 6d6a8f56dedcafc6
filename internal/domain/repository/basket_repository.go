package repository

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for basket persistence.
var (
	// ErrCorruptBasket is returned when the persisted basket cannot be decoded.
	ErrCorruptBasket = errors.New("persisted basket is corrupt")
)

// BasketRepository persists the full basket of one owner as a single collection.
type BasketRepository interface {
	// Load returns the persisted basket of owner in stored order.
	// A missing basket is not an error and yields an empty slice.
	Load(ctx context.Context, owner string) ([]entity.BasketItem, error)

	// Save replaces the persisted basket of owner with items.
	Save(ctx context.Context, owner string, items []entity.BasketItem) error
}

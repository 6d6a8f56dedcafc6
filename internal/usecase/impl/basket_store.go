package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/errors"
	"pos/internal/usecase"
)

// Basket mutation names, used for metrics and logs.
const (
	opAdd            = "add"
	opRemove         = "remove"
	opUpdateQuantity = "update_quantity"
	opClear          = "clear"
	opRemoveSelected = "remove_selected"
)

// BasketStore holds the basket of one owner.
//
// Every mutation re-reads the persisted list, computes the next list from it, persists
// the full list, and only then replaces the in-memory state. Mutations are serialized,
// so concurrent callers always build on the latest committed list, including writes made
// by another process sharing the same storage. A failed read or write leaves the
// in-memory list untouched.
type BasketStore struct {
	owner   string
	repo    repository.BasketRepository
	metrics service.BasketMetrics
	logger  *slog.Logger

	mu      sync.Mutex
	items   []entity.BasketItem
	loading atomic.Bool
}

// NewBasketStore creates a store for owner. The store starts in the loading state until
// a read succeeds.
func NewBasketStore(owner string, repo repository.BasketRepository, metrics service.BasketMetrics, logger *slog.Logger) *BasketStore {
	store := &BasketStore{
		owner:   owner,
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		items:   []entity.BasketItem{},
	}
	store.loading.Store(true)

	return store
}

// Owner returns the owner this store belongs to.
func (s *BasketStore) Owner() string {
	return s.owner
}

// Loading reports whether the persisted basket has not been read yet.
func (s *BasketStore) Loading() bool {
	return s.loading.Load()
}

// Load reads the persisted basket. Missing or corrupt data yields an empty basket.
// Any other read failure keeps the current list and leaves the store loading, so the
// next access retries.
func (s *BasketStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.loadLocked(ctx)
}

func (s *BasketStore) loadLocked(ctx context.Context) error {
	items, err := s.repo.Load(ctx, s.owner)
	switch {
	case errors.Is(err, repository.ErrCorruptBasket):
		s.logger.Warn("Persisted basket is corrupt, starting empty",
			slog.String("owner", s.owner),
			slog.Any("error", err),
		)
		items = nil
	case err != nil:
		s.logger.Warn("Failed to read persisted basket",
			slog.String("owner", s.owner),
			slog.Any("error", err),
		)

		return err
	}
	if items == nil {
		items = []entity.BasketItem{}
	}

	s.items = items
	s.loading.Store(false)

	return nil
}

// Items returns a copy of the current basket.
func (s *BasketStore) Items() []entity.BasketItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

// AddToBasket merges input into the line with the same product, or appends a new line.
func (s *BasketStore) AddToBasket(ctx context.Context, input usecase.AddBasketItemInput) ([]entity.BasketItem, error) {
	return s.mutate(ctx, opAdd, func(current []entity.BasketItem) ([]entity.BasketItem, error) {
		return addItem(current, input)
	})
}

// RemoveFromBasket removes the line with basket id. An absent id is not an error.
func (s *BasketStore) RemoveFromBasket(ctx context.Context, id int) ([]entity.BasketItem, error) {
	return s.mutate(ctx, opRemove, func(current []entity.BasketItem) ([]entity.BasketItem, error) {
		return removeItems(current, id), nil
	})
}

// UpdateQuantity sets the quantity of the line with basket id. A quantity of zero or less removes the line.
func (s *BasketStore) UpdateQuantity(ctx context.Context, id, quantity int) ([]entity.BasketItem, error) {
	if quantity <= 0 {
		return s.RemoveFromBasket(ctx, id)
	}

	return s.mutate(ctx, opUpdateQuantity, func(current []entity.BasketItem) ([]entity.BasketItem, error) {
		for i := range current {
			if current[i].ID == id {
				current[i].Quantity = quantity
			}
		}

		return current, nil
	})
}

// ClearBasket empties the basket.
func (s *BasketStore) ClearBasket(ctx context.Context) ([]entity.BasketItem, error) {
	return s.mutate(ctx, opClear, func([]entity.BasketItem) ([]entity.BasketItem, error) {
		return []entity.BasketItem{}, nil
	})
}

// RemoveSelectedItems removes every line whose basket id is in ids.
func (s *BasketStore) RemoveSelectedItems(ctx context.Context, ids []int) ([]entity.BasketItem, error) {
	return s.mutate(ctx, opRemoveSelected, func(current []entity.BasketItem) ([]entity.BasketItem, error) {
		return removeItems(current, ids...), nil
	})
}

// mutate reloads the persisted list, applies next to it, persists the result and commits it.
func (s *BasketStore) mutate(
	ctx context.Context,
	op string,
	next func(current []entity.BasketItem) ([]entity.BasketItem, error),
) ([]entity.BasketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		s.metrics.ObserveMutation(op, err)

		return nil, errors.Join(domainerrors.ErrBasketReadFailed, errors.Wrapf(err, "read basket before %s", op))
	}

	updated, err := next(slices.Clone(s.items))
	if err != nil {
		s.metrics.ObserveMutation(op, err)

		return nil, err
	}

	if err := s.repo.Save(ctx, s.owner, updated); err != nil {
		s.metrics.ObserveMutation(op, err)
		s.logger.Error("Failed to persist basket",
			slog.String("owner", s.owner),
			slog.String("op", op),
			slog.Any("error", err),
		)

		return nil, errors.Join(domainerrors.ErrBasketPersistFailed, errors.Wrapf(err, "persist basket after %s", op))
	}

	s.items = updated
	s.metrics.ObserveMutation(op, nil)

	return slices.Clone(updated), nil
}

// --- Basket transitions ---

// addItem merges by product id. Only the quantity of an existing line changes.
func addItem(items []entity.BasketItem, input usecase.AddBasketItemInput) ([]entity.BasketItem, error) {
	if input.Quantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	for i := range items {
		if items[i].ProductID == input.ProductID {
			items[i].Quantity += quantity

			return items, nil
		}
	}

	return append(items, entity.BasketItem{
		ID:        nextBasketItemID(items),
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Quantity:  quantity,
		Image:     input.Image,
		Points:    input.Points,
	}), nil
}

// nextBasketItemID returns one more than the largest id, or 1 for an empty basket.
func nextBasketItemID(items []entity.BasketItem) int {
	maxID := 0
	for _, item := range items {
		maxID = max(maxID, item.ID)
	}

	return maxID + 1
}

func removeItems(items []entity.BasketItem, ids ...int) []entity.BasketItem {
	if len(ids) == 0 {
		return items
	}

	selected := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	return slices.DeleteFunc(items, func(item entity.BasketItem) bool {
		_, ok := selected[item.ID]

		return ok
	})
}

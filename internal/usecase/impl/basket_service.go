package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"golang.org/x/sync/singleflight"
)

type basketService struct {
	basketRepo repository.BasketRepository
	metrics    service.BasketMetrics
	logger     *slog.Logger

	mu      sync.Mutex
	stores  map[string]*storeEntry
	hydrate singleflight.Group
}

// storeEntry tracks the callers currently using one owner's store.
type storeEntry struct {
	store *BasketStore
	refs  int
}

// NewBasketService creates the basket use case. A BasketStore lives only while calls for its
// owner are in flight; storage stays the source of truth between calls.
func NewBasketService(basketRepo repository.BasketRepository, metrics service.BasketMetrics, logger *slog.Logger) usecase.BasketUsecase {
	return &basketService{
		basketRepo: basketRepo,
		metrics:    metrics,
		logger:     logger,
		stores:     make(map[string]*storeEntry),
	}
}

// GetBasket returns the current basket of owner, read from storage.
func (s *basketService) GetBasket(ctx context.Context, owner string) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	// Concurrent readers share one load, which must not inherit one caller's cancellation.
	hydrateCtx := context.WithoutCancel(ctx)
	_, _, _ = s.hydrate.Do(owner, func() (any, error) {
		store.Load(hydrateCtx)

		return nil, nil
	})

	return newBasketOutput(store.Items()), nil
}

// AddToBasket adds a product to the basket of owner.
func (s *basketService) AddToBasket(ctx context.Context, owner string, input usecase.AddBasketItemInput) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := store.AddToBasket(ctx, input)
	if err != nil {
		return nil, err
	}

	return newBasketOutput(items), nil
}

// RemoveFromBasket removes one line from the basket of owner.
func (s *basketService) RemoveFromBasket(ctx context.Context, owner string, id int) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := store.RemoveFromBasket(ctx, id)
	if err != nil {
		return nil, err
	}

	return newBasketOutput(items), nil
}

// UpdateQuantity changes the quantity of one line in the basket of owner.
func (s *basketService) UpdateQuantity(ctx context.Context, owner string, id, quantity int) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := store.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	return newBasketOutput(items), nil
}

// ClearBasket empties the basket of owner.
func (s *basketService) ClearBasket(ctx context.Context, owner string) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := store.ClearBasket(ctx)
	if err != nil {
		return nil, err
	}

	return newBasketOutput(items), nil
}

// RemoveSelectedItems removes the given lines from the basket of owner.
func (s *basketService) RemoveSelectedItems(ctx context.Context, owner string, ids []int) (*usecase.BasketOutput, error) {
	store, release, err := s.acquire(owner)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := store.RemoveSelectedItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return newBasketOutput(items), nil
}

// acquire returns the store of owner and a func that must be called once the caller is done.
// Callers for the same owner share a store, so their mutations are serialized; the store is
// dropped when the last caller releases it.
func (s *basketService) acquire(owner string) (*BasketStore, func(), error) {
	if strings.TrimSpace(owner) == "" {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("basket owner is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.stores[owner]
	if !ok {
		entry = &storeEntry{store: NewBasketStore(owner, s.basketRepo, s.metrics, s.logger)}
		s.stores[owner] = entry
	}
	entry.refs++

	release := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		entry.refs--
		if entry.refs == 0 {
			delete(s.stores, owner)
		}
	}

	return entry.store, release, nil
}

func newBasketOutput(items []entity.BasketItem) *usecase.BasketOutput {
	if items == nil {
		items = []entity.BasketItem{}
	}

	return &usecase.BasketOutput{
		Items:   items,
		Summary: entity.SummarizeBasket(items),
	}
}

package impl

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	mockRepo "pos/internal/mocks/repository"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryBasketRepo keeps one basket per owner and can be told to fail writes.
type memoryBasketRepo struct {
	mu        sync.Mutex
	baskets   map[string][]entity.BasketItem
	saveErr   error
	saveCount int
}

func newMemoryBasketRepo() *memoryBasketRepo {
	return &memoryBasketRepo{baskets: make(map[string][]entity.BasketItem)}
}

func (r *memoryBasketRepo) Load(_ context.Context, owner string) ([]entity.BasketItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.baskets[owner]), nil
}

func (r *memoryBasketRepo) Save(_ context.Context, owner string, items []entity.BasketItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveCount++
	r.baskets[owner] = slices.Clone(items)

	return nil
}

func (r *memoryBasketRepo) stored(owner string) []entity.BasketItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.baskets[owner])
}

// recordingMetrics counts observed mutations by outcome.
type recordingMetrics struct {
	mu       sync.Mutex
	success  map[string]int
	failures map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{success: map[string]int{}, failures: map[string]int{}}
}

func (m *recordingMetrics) ObserveMutation(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.failures[op]++

		return
	}
	m.success[op]++
}

func (m *recordingMetrics) ObserveStorage(string, time.Duration, error) {}

const testOwner = "7d0f4a4e-4b7e-4c1b-9a57-3f1d2c1e0b11"

func espresso(quantity int) usecase.AddBasketItemInput {
	return usecase.AddBasketItemInput{ProductID: 101, Name: "Espresso", Price: 2.50, Quantity: quantity, Points: 25}
}

func croissant(quantity int) usecase.AddBasketItemInput {
	return usecase.AddBasketItemInput{ProductID: 202, Name: "Croissant", Price: 3.20, Quantity: quantity, Points: 10, Image: "https://cdn.example.com/croissant.png"}
}

func latte(quantity int) usecase.AddBasketItemInput {
	return usecase.AddBasketItemInput{ProductID: 303, Name: "Latte", Price: 4.00, Quantity: quantity, Points: 40}
}

func newLoadedStore(t *testing.T, repo *memoryBasketRepo) *BasketStore {
	t.Helper()

	store := NewBasketStore(testOwner, repo, newRecordingMetrics(), newTestLogger())
	store.Load(context.Background())
	require.False(t, store.Loading())

	return store
}

func ids(items []entity.BasketItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}

	return out
}

func TestBasketStore_LoadingUntilLoaded(t *testing.T) {
	store := NewBasketStore(testOwner, newMemoryBasketRepo(), newRecordingMetrics(), newTestLogger())
	assert.True(t, store.Loading())
	assert.Empty(t, store.Items())
	assert.Equal(t, testOwner, store.Owner())

	store.Load(context.Background())
	assert.False(t, store.Loading())
	assert.NotNil(t, store.Items())
	assert.Empty(t, store.Items())
}

func TestBasketStore_Load_ReadFailureRetriesOnNextAccess(t *testing.T) {
	repo := mockRepo.NewMockBasketRepository(t)
	repo.EXPECT().Load(mock.Anything, testOwner).Return(nil, errors.New("storage unavailable")).Once()
	repo.EXPECT().
		Load(mock.Anything, testOwner).
		Return([]entity.BasketItem{{ID: 2, ProductID: 202, Name: "Croissant", Price: 3.20, Quantity: 1, Points: 10}}, nil).
		Once()

	store := NewBasketStore(testOwner, repo, newRecordingMetrics(), newTestLogger())
	store.Load(context.Background())

	assert.True(t, store.Loading())
	assert.Empty(t, store.Items())

	store.Load(context.Background())

	assert.False(t, store.Loading())
	assert.Equal(t, []int{2}, ids(store.Items()))
}

func TestBasketStore_Load_CorruptBasketYieldsEmptyBasket(t *testing.T) {
	repo := mockRepo.NewMockBasketRepository(t)
	repo.EXPECT().
		Load(mock.Anything, testOwner).
		Return(nil, errors.Wrap(repository.ErrCorruptBasket, "decode basket")).
		Once()

	store := NewBasketStore(testOwner, repo, newRecordingMetrics(), newTestLogger())
	store.Load(context.Background())

	assert.False(t, store.Loading())
	assert.NotNil(t, store.Items())
	assert.Empty(t, store.Items())
}

func TestBasketStore_ReadFailureBlocksMutation(t *testing.T) {
	readErr := errors.New("connection refused")
	repo := mockRepo.NewMockBasketRepository(t)
	repo.EXPECT().Load(mock.Anything, testOwner).Return(nil, readErr)

	metrics := newRecordingMetrics()
	store := NewBasketStore(testOwner, repo, metrics, newTestLogger())

	items, err := store.AddToBasket(context.Background(), espresso(1))
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrBasketReadFailed)
	assert.ErrorIs(t, err, readErr)
	assert.True(t, store.Loading())
	assert.Equal(t, 1, metrics.failures[opAdd])
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestBasketStore_MutationBuildsOnPersistedBasket(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)

	// Another writer sharing the storage appends a line.
	repo.baskets[testOwner] = append(repo.stored(testOwner),
		entity.BasketItem{ID: 2, ProductID: 202, Name: "Croissant", Price: 3.20, Quantity: 1, Points: 10})

	items, err := store.AddToBasket(ctx, latte(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(items))
	assert.Equal(t, items, repo.stored(testOwner))
}

func TestBasketStore_AddToBasket_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	items, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)

	items, err = store.AddToBasket(ctx, croissant(2))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, "https://cdn.example.com/croissant.png", items[1].Image)
}

func TestBasketStore_AddToBasket_IDIsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)
	_, err = store.AddToBasket(ctx, croissant(1))
	require.NoError(t, err)
	_, err = store.AddToBasket(ctx, latte(1))
	require.NoError(t, err)

	_, err = store.RemoveFromBasket(ctx, 2)
	require.NoError(t, err)

	items, err := store.AddToBasket(ctx, usecase.AddBasketItemInput{ProductID: 404, Name: "Muffin", Price: 2.75})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, ids(items))
}

func TestBasketStore_AddToBasket_MergesByProduct(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)

	items, err := store.AddToBasket(ctx, usecase.AddBasketItemInput{
		ProductID: 101,
		Name:      "Espresso Doppio",
		Price:     9.99,
		Quantity:  3,
		Points:    99,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "Espresso", items[0].Name)
	assert.InDelta(t, 2.50, items[0].Price, 0.0001)
	assert.Equal(t, 25, items[0].Points)
}

func TestBasketStore_AddToBasket_DefaultsQuantityToOne(t *testing.T) {
	store := newLoadedStore(t, newMemoryBasketRepo())

	items, err := store.AddToBasket(context.Background(), espresso(0))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestBasketStore_AddToBasket_RejectsNegativeQuantity(t *testing.T) {
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	items, err := store.AddToBasket(context.Background(), espresso(-2))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	assert.Nil(t, items)
	assert.Empty(t, store.Items())
	assert.Zero(t, repo.saveCount)
}

func TestBasketStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)

	items, err := store.UpdateQuantity(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	items, err = store.UpdateQuantity(ctx, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestBasketStore_UpdateQuantity_NonPositiveRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		ctx := context.Background()
		viaUpdate := newLoadedStore(t, newMemoryBasketRepo())
		viaRemove := newLoadedStore(t, newMemoryBasketRepo())

		for _, store := range []*BasketStore{viaUpdate, viaRemove} {
			_, err := store.AddToBasket(ctx, espresso(1))
			require.NoError(t, err)
			_, err = store.AddToBasket(ctx, croissant(1))
			require.NoError(t, err)
		}

		updated, err := viaUpdate.UpdateQuantity(ctx, 1, quantity)
		require.NoError(t, err)
		removed, err := viaRemove.RemoveFromBasket(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, removed, updated, "quantity %d", quantity)
		assert.Equal(t, []int{2}, ids(updated))
	}
}

func TestBasketStore_RemoveFromBasket_AbsentIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)

	items, err := store.RemoveFromBasket(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(items))
	assert.Equal(t, 2, repo.saveCount)
}

func TestBasketStore_RemoveSelectedItems(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	for _, input := range []usecase.AddBasketItemInput{espresso(1), croissant(1), latte(1)} {
		_, err := store.AddToBasket(ctx, input)
		require.NoError(t, err)
	}

	items, err := store.RemoveSelectedItems(ctx, []int{1, 3})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 202, items[0].ProductID)
}

func TestBasketStore_RemoveSelectedItems_EmptySelection(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)

	items, err := store.RemoveSelectedItems(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(items))
}

func TestBasketStore_ClearThenReload(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	_, err := store.AddToBasket(ctx, espresso(2))
	require.NoError(t, err)
	_, err = store.AddToBasket(ctx, latte(1))
	require.NoError(t, err)

	items, err := store.ClearBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	restarted := newLoadedStore(t, repo)
	assert.Empty(t, restarted.Items())
}

func TestBasketStore_ReloadReproducesBasket(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	for _, input := range []usecase.AddBasketItemInput{latte(2), espresso(1), croissant(3)} {
		_, err := store.AddToBasket(ctx, input)
		require.NoError(t, err)
	}

	restarted := newLoadedStore(t, repo)
	assert.Equal(t, store.Items(), restarted.Items())
	assert.Equal(t, []int{1, 2, 3}, ids(restarted.Items()))
}

func TestBasketStore_WriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	metrics := newRecordingMetrics()
	store := NewBasketStore(testOwner, repo, metrics, newTestLogger())
	store.Load(ctx)

	_, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)
	before := store.Items()

	storageErr := errors.New("disk full")
	repo.saveErr = storageErr

	mutations := map[string]func() ([]entity.BasketItem, error){
		opAdd:            func() ([]entity.BasketItem, error) { return store.AddToBasket(ctx, croissant(1)) },
		opRemove:         func() ([]entity.BasketItem, error) { return store.RemoveFromBasket(ctx, 1) },
		opUpdateQuantity: func() ([]entity.BasketItem, error) { return store.UpdateQuantity(ctx, 1, 9) },
		opClear:          func() ([]entity.BasketItem, error) { return store.ClearBasket(ctx) },
		opRemoveSelected: func() ([]entity.BasketItem, error) { return store.RemoveSelectedItems(ctx, []int{1}) },
	}

	for op, mutate := range mutations {
		items, err := mutate()
		require.Error(t, err, op)
		assert.Nil(t, items, op)
		assert.ErrorIs(t, err, domainerrors.ErrBasketPersistFailed, op)
		assert.ErrorIs(t, err, storageErr, op)
		assert.Equal(t, before, store.Items(), op)
		assert.Equal(t, before, repo.stored(testOwner), op)
		assert.Equal(t, 1, metrics.failures[op], op)
	}
	assert.Equal(t, 1, metrics.success[opAdd])
}

func TestBasketStore_MutationBeforeLoadHydratesFirst(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryBasketRepo()
	repo.baskets[testOwner] = []entity.BasketItem{
		{ID: 4, ProductID: 101, Name: "Espresso", Price: 2.50, Quantity: 1, Points: 25},
	}

	store := NewBasketStore(testOwner, repo, newRecordingMetrics(), newTestLogger())
	require.True(t, store.Loading())

	items, err := store.AddToBasket(ctx, croissant(1))
	require.NoError(t, err)
	assert.False(t, store.Loading())
	assert.Equal(t, []int{4, 5}, ids(items))
}

func TestBasketStore_ItemsReturnsCopy(t *testing.T) {
	store := newLoadedStore(t, newMemoryBasketRepo())

	_, err := store.AddToBasket(context.Background(), espresso(1))
	require.NoError(t, err)

	items := store.Items()
	items[0].Quantity = 100

	assert.Equal(t, 1, store.Items()[0].Quantity)
}

func TestBasketStore_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	const taps = 50

	ctx := context.Background()
	repo := newMemoryBasketRepo()
	store := newLoadedStore(t, repo)

	var wg sync.WaitGroup
	for range taps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddToBasket(ctx, espresso(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, taps, items[0].Quantity)
	assert.Equal(t, items, repo.stored(testOwner))
}

func TestBasketStore_EspressoScenario(t *testing.T) {
	ctx := context.Background()
	store := newLoadedStore(t, newMemoryBasketRepo())
	require.Empty(t, store.Items())

	items, err := store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)
	assert.Equal(t, []entity.BasketItem{
		{ID: 1, ProductID: 101, Name: "Espresso", Price: 2.50, Quantity: 1, Points: 25},
	}, items)

	items, err = store.AddToBasket(ctx, espresso(1))
	require.NoError(t, err)
	assert.Equal(t, []entity.BasketItem{
		{ID: 1, ProductID: 101, Name: "Espresso", Price: 2.50, Quantity: 2, Points: 25},
	}, items)

	items, err = store.UpdateQuantity(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

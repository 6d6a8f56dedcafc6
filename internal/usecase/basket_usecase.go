package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// --- Input DTOs ---

// AddBasketItemInput describes a product being added to the basket.
type AddBasketItemInput struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int // Zero means omitted and defaults to one.
	Image     string
	Points    int
}

// --- Output DTOs ---

// BasketOutput is the basket state after an operation.
type BasketOutput struct {
	Items   []entity.BasketItem  `json:"items"`
	Summary entity.BasketSummary `json:"summary"`
}

// BasketUsecase defines basket operations for one owner at a time.
// Mutations for the same owner are applied one after another.
type BasketUsecase interface {
	GetBasket(ctx context.Context, owner string) (*BasketOutput, error)
	AddToBasket(ctx context.Context, owner string, input AddBasketItemInput) (*BasketOutput, error)
	RemoveFromBasket(ctx context.Context, owner string, id int) (*BasketOutput, error)
	UpdateQuantity(ctx context.Context, owner string, id, quantity int) (*BasketOutput, error)
	ClearBasket(ctx context.Context, owner string) (*BasketOutput, error)
	RemoveSelectedItems(ctx context.Context, owner string, ids []int) (*BasketOutput, error)
}

package entity

import "math"

// BasketItem is one line of the shopping basket. Name, price, image and points are
// snapshots taken when the product was first added.
type BasketItem struct {
	ID        int     `json:"id"`         // Assigned by the basket store, stable for the lifetime of the line.
	ProductID int     `json:"product_id"` // Catalog reference; at most one line per product.
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"` // Always >= 1 while the line exists.
	Image     string  `json:"image,omitempty"`
	Points    int     `json:"points"` // Loyalty points awarded per unit.
}

// BasketSummary aggregates a basket for checkout.
type BasketSummary struct {
	LineCount   int     `json:"line_count"`
	ItemCount   int     `json:"item_count"`
	Subtotal    float64 `json:"subtotal"`
	TotalPoints int     `json:"total_points"`
}

// SummarizeBasket computes totals over the given lines. The subtotal is rounded to cents.
func SummarizeBasket(items []BasketItem) BasketSummary {
	summary := BasketSummary{LineCount: len(items)}

	var subtotal float64
	for _, item := range items {
		summary.ItemCount += item.Quantity
		summary.TotalPoints += item.Points * item.Quantity
		subtotal += item.Price * float64(item.Quantity)
	}
	summary.Subtotal = math.Round(subtotal*100) / 100

	return summary
}

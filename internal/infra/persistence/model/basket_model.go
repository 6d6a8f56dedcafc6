package model

import (
	"time"

	"pos/internal/domain/entity"
)

// BasketItemRecord is the stored form of one basket line.
// Field names follow the device storage layout used by the POS clients.
type BasketItemRecord struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Points    int     `json:"points"`
}

// KeyValueModel is the GORM-specific struct for the 'kv_entries' table.
type KeyValueModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KeyValueModel) TableName() string {
	return "kv_entries"
}

// FromBasketItems converts domain basket lines into stored records.
func FromBasketItems(items []entity.BasketItem) []BasketItemRecord {
	records := make([]BasketItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, BasketItemRecord{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Points:    item.Points,
		})
	}

	return records
}

// ToBasketItems converts stored records into domain basket lines.
func ToBasketItems(records []BasketItemRecord) []entity.BasketItem {
	items := make([]entity.BasketItem, 0, len(records))
	for _, record := range records {
		items = append(items, entity.BasketItem{
			ID:        record.ID,
			ProductID: record.ProductID,
			Name:      record.Name,
			Price:     record.Price,
			Quantity:  record.Quantity,
			Image:     record.Image,
			Points:    record.Points,
		})
	}

	return items
}

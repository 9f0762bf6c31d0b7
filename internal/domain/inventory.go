package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

type InventoryItem struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name" validate:"required"`
	SKU                string      `json:"sku,omitempty" gorm:"uniqueIndex"`
	Quantity           int         `json:"quantity" validate:"gte=0"`
	MinQuantity        int         `json:"min_quantity" validate:"gte=0"`
	Unit               string      `json:"unit,omitempty"`
	PurchasePriceCents int64       `json:"purchase_price_cents"`
	Status             StockStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// DeriveStockStatus maps a quantity against its minimum threshold.
func DeriveStockStatus(quantity, minQuantity int) StockStatus {
	switch {
	case quantity == 0:
		return StockOut
	case quantity <= minQuantity:
		return StockLow
	default:
		return StockIn
	}
}

// StockMovement is the append-only audit row written for every quantity
// adjustment. No adjustment happens without a reason.
type StockMovement struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ItemID            int64     `json:"item_id" gorm:"not null;index"`
	Delta             int       `json:"delta" gorm:"not null"`
	Reason            string    `json:"reason" gorm:"type:text;not null"`
	ResultingQuantity int       `json:"resulting_quantity" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`

	Item *InventoryItem `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}

func (m *StockMovement) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

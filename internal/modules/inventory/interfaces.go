package inventory

import (
	"context"

	"coworking/internal/domain"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Adjust(ctx context.Context, itemID int64, delta int, reason string) (*domain.InventoryItem, error)
	LowStock(ctx context.Context) ([]domain.InventoryItem, error)
	Movements(ctx context.Context, itemID int64, limit int) ([]domain.StockMovement, error)
}

package inventory

import (
	"context"
	"errors"
	"strings"

	"coworking/internal/domain"
	"coworking/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	items InventoryRepository
}

func NewService(items InventoryRepository) *Service {
	return &Service{items: items}
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		Name:               req.Name,
		SKU:                req.SKU,
		Quantity:           req.Quantity,
		MinQuantity:        req.MinQuantity,
		Unit:               req.Unit,
		PurchasePriceCents: req.PurchasePriceCents,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Adjust applies a signed delta to the item's stock. Every adjustment needs
// a reason; the movement trail has no anonymous entries.
func (s *Service) Adjust(ctx context.Context, itemID int64, req AdjustStockRequest) (*domain.InventoryItem, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonRequired
	}

	item, err := s.items.Adjust(ctx, itemID, req.Delta, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNegativeQuantity):
			return nil, ErrNegativeStock
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.List(ctx)
}

func (s *Service) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.LowStock(ctx)
}

func (s *Service) Movements(ctx context.Context, itemID int64, limit int) ([]domain.StockMovement, error) {
	if _, err := s.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.items.Movements(ctx, itemID, limit)
}

package repository

import (
	"context"
	"errors"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

// ErrNegativeQuantity is returned when a delta would drive stock below zero.
var ErrNegativeQuantity = errors.New("adjustment would make quantity negative")

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	item.Status = domain.DeriveStockStatus(item.Quantity, item.MinQuantity)
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := r.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Adjust applies a signed delta under a row lock, re-derives the stock
// status, and appends the audit movement in the same transaction. On
// ErrNegativeQuantity nothing is written.
func (r *InventoryRepository) Adjust(ctx context.Context, itemID int64, delta int, reason string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&item, itemID).Error; err != nil {
			return err
		}

		newQty := item.Quantity + delta
		if newQty < 0 {
			return ErrNegativeQuantity
		}

		item.Quantity = newQty
		item.Status = domain.DeriveStockStatus(newQty, item.MinQuantity)

		if err := tx.Model(&domain.InventoryItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"quantity": item.Quantity,
				"status":   item.Status,
			}).Error; err != nil {
			return err
		}

		movement := domain.StockMovement{
			ItemID:            item.ID,
			Delta:             delta,
			Reason:            reason,
			ResultingQuantity: newQty,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= min_quantity").
		Order("quantity").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) Movements(ctx context.Context, itemID int64, limit int) ([]domain.StockMovement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []domain.StockMovement
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

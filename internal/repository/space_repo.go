package repository

import (
	"context"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	var s domain.Space
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

type SpaceFilters struct {
	Type      domain.SpaceType
	Capacity  int
	Available bool
}

func (r *SpaceRepository) List(ctx context.Context, filters SpaceFilters) ([]domain.Space, error) {
	q := r.db.WithContext(ctx).Model(&domain.Space{})

	if filters.Type != "" {
		q = q.Where("type = ?", filters.Type)
	}
	if filters.Capacity > 0 {
		q = q.Where("capacity >= ?", filters.Capacity)
	}
	if filters.Available {
		q = q.Where("is_available = ?", true).
			Where("maintenance_status = ?", domain.SpaceOperational)
	}

	var spaces []domain.Space
	if err := q.Order("name").Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r *SpaceRepository) UpdateMaintenanceStatus(ctx context.Context, id int64, status domain.MaintenanceStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Space{}).
		Where("id = ?", id).
		Update("maintenance_status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SpaceRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Space{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

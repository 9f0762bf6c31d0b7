package repository

import (
	"context"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	var req domain.MaintenanceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *MaintenanceRepository) Assign(ctx context.Context, id int64, staff string, scheduled *time.Time) error {
	updates := map[string]any{
		"status":      domain.RequestInProgress,
		"assigned_to": staff,
	}
	if scheduled != nil {
		updates["scheduled_date"] = scheduled
	}
	return r.db.WithContext(ctx).
		Model(&domain.MaintenanceRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *MaintenanceRepository) Complete(ctx context.Context, id int64, actualCost *int64, at time.Time) error {
	updates := map[string]any{
		"status":          domain.RequestCompleted,
		"completion_date": &at,
	}
	if actualCost != nil {
		updates["actual_cost_cents"] = actualCost
	}
	return r.db.WithContext(ctx).
		Model(&domain.MaintenanceRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.MaintenanceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *MaintenanceRepository) ListBySpace(ctx context.Context, spaceID int64) ([]domain.MaintenanceRequest, error) {
	var rows []domain.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("request_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MaintenanceRepository) ListOpen(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	var rows []domain.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(domain.RequestPending), string(domain.RequestInProgress)}).
		Order("request_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

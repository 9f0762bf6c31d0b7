package maintenance

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	Assign(ctx context.Context, id int64, staff string, scheduled *time.Time) error
	Complete(ctx context.Context, id int64, actualCost *int64, at time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	ListBySpace(ctx context.Context, spaceID int64) ([]domain.MaintenanceRequest, error)
	ListOpen(ctx context.Context) ([]domain.MaintenanceRequest, error)
}

// SpaceDirectory is the slice of the space store the tracker needs: request
// targets must exist, and taking a space out of service goes through it.
type SpaceDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	UpdateMaintenanceStatus(ctx context.Context, id int64, status domain.MaintenanceStatus) error
}

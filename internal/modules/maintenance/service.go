package maintenance

import (
	"context"
	"errors"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	requests MaintenanceRepository
	spaces   SpaceDirectory
}

func NewService(requests MaintenanceRepository, spaces SpaceDirectory) *Service {
	return &Service{requests: requests, spaces: spaces}
}

func (s *Service) Create(ctx context.Context, req CreateRequestRequest, now time.Time) (*domain.MaintenanceRequest, error) {
	if _, err := s.spaces.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	priority := domain.MaintenancePriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	r := &domain.MaintenanceRequest{
		SpaceID:            req.SpaceID,
		Title:              req.Title,
		Description:        req.Description,
		Priority:           priority,
		Status:             domain.RequestPending,
		RequestDate:        now,
		ScheduledDate:      req.ScheduledDate,
		EstimatedCostCents: req.EstimatedCostCents,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Assign hands a pending request to a staff member and moves it to
// in_progress. Requests already in flight or closed cannot be reassigned.
func (s *Service) Assign(ctx context.Context, id int64, req AssignRequest) (*domain.MaintenanceRequest, error) {
	r, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RequestPending {
		return nil, ErrAlreadyAssigned
	}
	if err := s.requests.Assign(ctx, id, req.AssignedTo, req.ScheduledDate); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) Complete(ctx context.Context, id int64, actualCost *int64, now time.Time) (*domain.MaintenanceRequest, error) {
	r, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RequestInProgress {
		return nil, ErrInvalidTransition
	}
	if err := s.requests.Complete(ctx, id, actualCost, now); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	r, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RequestPending && r.Status != domain.RequestInProgress {
		return nil, ErrInvalidTransition
	}
	if err := s.requests.UpdateStatus(ctx, id, domain.RequestCancelled); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// SetSpaceStatus is the explicit coupling between maintenance work and
// availability: only this call removes a space from booking, never a request
// transition by itself.
func (s *Service) SetSpaceStatus(ctx context.Context, spaceID int64, status domain.MaintenanceStatus) error {
	switch status {
	case domain.SpaceOperational, domain.SpaceUnderMaintenance, domain.SpaceOutOfOrder:
	default:
		return ErrInvalidStatus
	}
	if err := s.spaces.UpdateMaintenanceStatus(ctx, spaceID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	return s.get(ctx, id)
}

func (s *Service) ListBySpace(ctx context.Context, spaceID int64) ([]domain.MaintenanceRequest, error) {
	return s.requests.ListBySpace(ctx, spaceID)
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return s.requests.ListOpen(ctx)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

package space

import (
	"context"
	"errors"

	"coworking/internal/domain"
	"coworking/internal/pkg/validator"
	"coworking/internal/repository"

	"gorm.io/gorm"
)

// Service is the directory over spaces and members. Reservation and billing
// read through it; maintenance owns the maintenance-status writes.
type Service struct {
	spaces  SpaceRepository
	members MemberRepository
}

func NewService(spaces SpaceRepository, members MemberRepository) *Service {
	return &Service{spaces: spaces, members: members}
}

func (s *Service) CreateSpace(ctx context.Context, req CreateSpaceRequest) (*domain.Space, error) {
	sp := &domain.Space{
		Name:              req.Name,
		Type:              domain.SpaceType(req.Type),
		Description:       req.Description,
		Floor:             req.Floor,
		Capacity:          req.Capacity,
		HourlyRateCents:   req.HourlyRateCents,
		DailyRateCents:    req.DailyRateCents,
		MonthlyRateCents:  req.MonthlyRateCents,
		IsAvailable:       true,
		MaintenanceStatus: domain.SpaceOperational,
	}
	if fields := validator.Validate(sp); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.spaces.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) GetSpace(ctx context.Context, id int64) (*domain.Space, error) {
	sp, err := s.spaces.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return sp, nil
}

func (s *Service) ListSpaces(ctx context.Context, filters repository.SpaceFilters) ([]domain.Space, error) {
	return s.spaces.List(ctx, filters)
}

func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.spaces.SetAvailability(ctx, id, available); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (s *Service) CreateMember(ctx context.Context, req CreateMemberRequest) (*domain.Member, error) {
	m := &domain.Member{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		BillingAddress: req.BillingAddress,
		Status:         domain.MemberActive,
	}
	if fields := validator.Validate(m); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	return s.members.List(ctx, status)
}

func (s *Service) UpdateMemberStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error) {
	if err := s.members.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapNotFound(err)
	}
	return s.GetMember(ctx, id)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

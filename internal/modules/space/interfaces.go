package space

import (
	"context"

	"coworking/internal/domain"
	"coworking/internal/repository"
)

type SpaceRepository interface {
	Create(ctx context.Context, s *domain.Space) error
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, filters repository.SpaceFilters) ([]domain.Space, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	List(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error
}

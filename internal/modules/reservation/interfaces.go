package reservation

import (
	"context"
	"time"

	"coworking/internal/domain"
	"coworking/internal/repository"
)

// ReservationRepository is the storage surface the lifecycle manager needs.
type ReservationRepository interface {
	CreateIfFree(ctx context.Context, res *domain.Reservation) error
	IsAvailable(ctx context.Context, spaceID int64, start, end time.Time, excludeID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentState) (*domain.Reservation, error)
	CancelWithReason(ctx context.Context, id int64, reason string) error
	SetCheckIn(ctx context.Context, id int64, at time.Time) error
	SetCheckOut(ctx context.Context, id int64, at time.Time) error
	ListBySpace(ctx context.Context, spaceID int64, from, to time.Time) ([]domain.Reservation, error)
	ListByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Reservation, error)
	BusySlots(ctx context.Context, spaceID int64, from, to time.Time) ([]repository.BusySlot, error)
}

// SpaceDirectory resolves spaces and their rates.
type SpaceDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// MemberDirectory resolves members for existence/status checks.
type MemberDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

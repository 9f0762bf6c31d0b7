package reservation

import (
	"context"
	"errors"
	"time"

	"coworking/internal/domain"
	"coworking/internal/modules/pricing"
	"coworking/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationRepository
	spaces       SpaceDirectory
	members      MemberDirectory
}

func NewService(reservations ReservationRepository, spaces SpaceDirectory, members MemberDirectory) *Service {
	return &Service{
		reservations: reservations,
		spaces:       spaces,
		members:      members,
	}
}

// Create books the slot directly: the reservation lands as confirmed.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	return s.create(ctx, req, domain.ReservationConfirmed)
}

// CreatePending books the slot but leaves the reservation waiting for staff
// confirmation. Both entry points exist in the product: walk-in kiosks book
// directly, the public site goes through the pending flow.
func (s *Service) CreatePending(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	return s.create(ctx, req, domain.ReservationPending)
}

func (s *Service) create(ctx context.Context, req CreateReservationRequest, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidInterval
	}

	member, err := s.members.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotBookable
		}
		return nil, err
	}
	if member.Status != domain.MemberActive {
		return nil, ErrMemberNotBookable
	}

	space, err := s.spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	quote, err := pricing.QuoteFor(space, req.StartTime, req.EndTime, req.PromoCode)
	if err != nil {
		return nil, ErrInvalidInterval
	}

	res := &domain.Reservation{
		SpaceID:       req.SpaceID,
		MemberID:      req.MemberID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
		TotalCents:    quote.AmountCents,
		DiscountCents: quote.DiscountCents + quote.PromoCents,
		PromoCode:     req.PromoCode,
		Notes:         req.Notes,
	}

	if err := s.reservations.CreateIfFree(ctx, res); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotTaken), errors.Is(err, repository.ErrSpaceUnavailable):
			return nil, ErrSlotConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return res, nil
}

// Quote prices an interval without touching availability, for the booking
// form preview. The bool reports whether the promo code was recognized.
func (s *Service) Quote(ctx context.Context, spaceID int64, start, end time.Time, promoCode string) (*pricing.Quote, bool, error) {
	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	quote, err := pricing.QuoteFor(space, start, end, promoCode)
	if err != nil {
		return nil, false, ErrInvalidInterval
	}
	return quote, pricing.KnownPromo(promoCode), nil
}

// IsAvailable answers the read-only availability question for UI previews.
// excludeID lets an update-in-place check ignore the reservation being moved.
func (s *Service) IsAvailable(ctx context.Context, spaceID int64, start, end time.Time, excludeID int64) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidInterval
	}
	ok, err := s.reservations.IsAvailable(ctx, spaceID, start, end, excludeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return ok, nil
}

func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationPending {
		return nil, ErrInvalidTransition
	}
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationConfirmed); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationConfirmed {
		return nil, ErrNotConfirmed
	}
	if res.CheckInTime != nil {
		return nil, ErrAlreadyCheckedIn
	}
	if err := s.reservations.SetCheckIn(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// CheckOut records the departure time. It deliberately does not flip the
// reservation to completed; Complete is the explicit final step.
func (s *Service) CheckOut(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.CheckInTime == nil {
		return nil, ErrNotCheckedIn
	}
	if res.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}
	if err := s.reservations.SetCheckOut(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) Complete(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationConfirmed || res.CheckOutTime == nil {
		return nil, ErrInvalidTransition
	}
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationCompleted); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Cancel frees the slot. Allowed from pending or confirmed, never after
// check-out; cancelling an already-cancelled reservation reports
// ErrInvalidTransition and changes nothing.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Reservation, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationPending && res.Status != domain.ReservationConfirmed {
		return nil, ErrInvalidTransition
	}
	if res.CheckOutTime != nil {
		return nil, ErrInvalidTransition
	}
	if err := s.reservations.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// UpdateStatus is the direct setter used by the billing layers. It does not
// re-validate scheduling; only Create and Cancel touch availability.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.reservations.UpdateStatus(ctx, id, status)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentState) (*domain.Reservation, error) {
	res, err := s.reservations.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.get(ctx, id)
}

func (s *Service) GetBySpace(ctx context.Context, spaceID int64, from, to time.Time) ([]domain.Reservation, error) {
	return s.reservations.ListBySpace(ctx, spaceID, from, to)
}

func (s *Service) GetByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Reservation, error) {
	return s.reservations.ListByMember(ctx, memberID, limit, offset)
}

func (s *Service) BusySlots(ctx context.Context, spaceID int64, from, to time.Time) ([]repository.BusySlot, error) {
	return s.reservations.BusySlots(ctx, spaceID, from, to)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

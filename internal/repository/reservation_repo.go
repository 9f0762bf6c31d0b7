package repository

import (
	"context"
	"errors"
	"time"

	"coworking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// activeOverlap narrows a query to reservations that still occupy a slot
// intersecting [start, end). Half-open comparison: back-to-back is allowed.
func activeOverlap(q *gorm.DB, spaceID int64, start, end time.Time, excludeID int64) *gorm.DB {
	q = q.Where("space_id = ?", spaceID).
		Where("status IN ?", []string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Where("check_out_time IS NULL").
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// IsAvailable is the read-only availability predicate: the space must be
// bookable and no active reservation may overlap the interval. It does not
// lock anything; CreateIfFree repeats the check under a row lock.
func (r *ReservationRepository) IsAvailable(ctx context.Context, spaceID int64, start, end time.Time, excludeID int64) (bool, error) {
	var space domain.Space
	if err := r.db.WithContext(ctx).First(&space, spaceID).Error; err != nil {
		return false, err
	}
	if !space.Bookable() {
		return false, nil
	}

	var cnt int64
	err := activeOverlap(r.db.WithContext(ctx).Model(&domain.Reservation{}), spaceID, start, end, excludeID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// CreateIfFree inserts the reservation only if its slot is free. The space
// row is locked for the duration of the transaction so racing creates for the
// same space serialize; only one of two overlapping requests can win. A
// partial exclusion index is the constraint-level backstop on Postgres.
func (r *ReservationRepository) CreateIfFree(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var space domain.Space
		if err := lockForUpdate(tx).First(&space, res.SpaceID).Error; err != nil {
			return err
		}
		if !space.Bookable() {
			return ErrSpaceUnavailable
		}

		var cnt int64
		if err := activeOverlap(tx.Model(&domain.Reservation{}), res.SpaceID, res.StartTime, res.EndTime, 0).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(res).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentState) (*domain.Reservation, error) {
	if err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("payment_status", status).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// CancelWithReason flips the row to cancelled in one update; the freed slot
// is visible to availability queries as soon as the write commits.
func (r *ReservationRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        domain.ReservationCancelled,
			"cancel_reason": reason,
			"cancelled_at":  &now,
		}).Error
}

func (r *ReservationRepository) SetCheckIn(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("check_in_time", &at).Error
}

func (r *ReservationRepository) SetCheckOut(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("check_out_time", &at).Error
}

func (r *ReservationRepository) ListBySpace(ctx context.Context, spaceID int64, from, to time.Time) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).
		Where("space_id = ?", spaceID)
	if !from.IsZero() {
		q = q.Where("end_time > ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_time < ?", to)
	}

	var rows []domain.Reservation
	if err := q.Order("start_time").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationRepository) ListByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Reservation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// BusySlot is the projection used by the availability calendar.
type BusySlot struct {
	Start time.Time `json:"start" gorm:"column:slot_start"`
	End   time.Time `json:"end" gorm:"column:slot_end"`
}

func (r *ReservationRepository) BusySlots(ctx context.Context, spaceID int64, from, to time.Time) ([]BusySlot, error) {
	var rows []BusySlot
	err := activeOverlap(r.db.WithContext(ctx).Model(&domain.Reservation{}), spaceID, from, to, 0).
		Select("start_time AS slot_start, end_time AS slot_end").
		Order("start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

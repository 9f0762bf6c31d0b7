package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type PaymentState string

const (
	PaymentUnpaid   PaymentState = "unpaid"
	PaymentPartial  PaymentState = "partial"
	PaymentPaid     PaymentState = "paid"
	PaymentRefunded PaymentState = "refunded"
)

// Reservation is a time-bounded booking of a Space by a Member.
// Rows are never deleted; cancellation and completion are soft state.
type Reservation struct {
	ID            int64             `json:"id"`
	SpaceID       int64             `json:"space_id" validate:"required"`
	MemberID      int64             `json:"member_id" validate:"required"`
	StartTime     time.Time         `json:"start_time" validate:"required"`
	EndTime       time.Time         `json:"end_time" validate:"required"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentState      `json:"payment_status"`
	TotalCents    int64             `json:"total_cents"`
	DiscountCents int64             `json:"discount_cents,omitempty"`
	PromoCode     string            `json:"promo_code,omitempty"`
	Notes         string            `json:"notes,omitempty" gorm:"type:text"`
	CheckInTime   *time.Time        `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time        `json:"check_out_time,omitempty"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`
	CancelReason  string            `json:"cancel_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Space  *Space  `json:"space,omitempty" gorm:"foreignKey:SpaceID"`
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// Active reports whether the reservation still occupies its slot.
// A checked-out reservation no longer blocks the interval.
func (r *Reservation) Active() bool {
	if r.CheckOutTime != nil {
		return false
	}
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

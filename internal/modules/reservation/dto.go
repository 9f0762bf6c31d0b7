package reservation

import "time"

type CreateReservationRequest struct {
	SpaceID   int64     `json:"space_id" binding:"required"`
	MemberID  int64     `json:"member_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
	PromoCode string    `json:"promo_code"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

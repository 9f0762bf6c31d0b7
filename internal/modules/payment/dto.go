package payment

type ProcessPaymentRequest struct {
	MemberID      int64  `json:"member_id" binding:"required"`
	InvoiceID     *int64 `json:"invoice_id"`
	ReservationID int64  `json:"reservation_id"`
	AmountCents   int64  `json:"amount_cents" binding:"required"`
	Method        string `json:"method" binding:"required,oneof=cash card bank_transfer"`
	Reference     string `json:"reference"`
}

type RefundPaymentRequest struct {
	AmountCents   int64  `json:"amount_cents" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	ReservationID int64  `json:"reservation_id"`
}

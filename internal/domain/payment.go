package domain

import "time"

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "bank_transfer"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxFailed    TransactionStatus = "failed"
	TxRefunded  TransactionStatus = "refunded"
)

// Payment records a money movement against a member, optionally tied to an
// invoice. A refund patches RefundedCents/RefundDate/RefundReason on the
// same row; payment rows are never deleted.
type Payment struct {
	ID            int64             `json:"id"`
	MemberID      int64             `json:"member_id" validate:"required"`
	InvoiceID     *int64            `json:"invoice_id,omitempty"`
	AmountCents   int64             `json:"amount_cents" validate:"gt=0"`
	Method        PaymentMethod     `json:"method"`
	Status        TransactionStatus `json:"status"`
	Reference     string            `json:"reference,omitempty"`
	RefundedCents int64             `json:"refunded_cents"`
	RefundDate    *time.Time        `json:"refund_date,omitempty"`
	RefundReason  string            `json:"refund_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Invoice *Invoice `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
}

// RefundableCents is the amount still open for refund on this payment.
func (p *Payment) RefundableCents() int64 {
	return p.AmountCents - p.RefundedCents
}

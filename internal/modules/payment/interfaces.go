package payment

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ApplyRefund(ctx context.Context, paymentID, amountCents int64, reason string, at time.Time) (*domain.Payment, bool, error)
	SumCompletedForInvoice(ctx context.Context, invoiceID int64) (int64, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
}

// InvoiceLedger is the slice of the invoice store the processor settles
// against.
type InvoiceLedger interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error
}

// ReservationBilling mirrors the payment state of a reservation when the
// caller links one to the transaction.
type ReservationBilling interface {
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentState) (*domain.Reservation, error)
}

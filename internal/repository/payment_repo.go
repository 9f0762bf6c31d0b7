package repository

import (
	"context"
	"errors"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

// ErrRefundTooLarge is returned when a refund would exceed the remaining
// refundable balance of a payment.
var ErrRefundTooLarge = errors.New("refund exceeds remaining payment balance")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyRefund patches refund fields on the payment row inside a transaction
// that row-locks it first, so concurrent refunds against the same payment
// serialize and the balance check always reads the latest committed value.
// Returns the updated payment and whether the refund exhausted it.
func (r *PaymentRepository) ApplyRefund(ctx context.Context, paymentID, amountCents int64, reason string, at time.Time) (*domain.Payment, bool, error) {
	var p domain.Payment
	var full bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&p, paymentID).Error; err != nil {
			return err
		}

		if amountCents > p.RefundableCents() {
			return ErrRefundTooLarge
		}

		p.RefundedCents += amountCents
		p.RefundDate = &at
		p.RefundReason = reason
		full = p.RefundedCents == p.AmountCents
		if full {
			p.Status = domain.TxRefunded
		}

		return tx.Model(&domain.Payment{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"refunded_cents": p.RefundedCents,
				"refund_date":    p.RefundDate,
				"refund_reason":  p.RefundReason,
				"status":         p.Status,
			}).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &p, full, nil
}

// SumCompletedForInvoice totals the money still held against an invoice.
// Refunded cents are netted out, so a refunded payment no longer counts as
// coverage toward the invoice total.
func (r *PaymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID int64) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Select("COALESCE(SUM(amount_cents - refunded_cents), 0)").
		Where("invoice_id = ?", invoiceID).
		Where("status IN ?", []string{string(domain.TxCompleted), string(domain.TxRefunded)}).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *PaymentRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	var rows []domain.Payment
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	var rows []domain.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

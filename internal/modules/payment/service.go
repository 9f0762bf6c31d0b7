package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"coworking/internal/domain"
	"coworking/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	payments     PaymentRepository
	invoices     InvoiceLedger
	reservations ReservationBilling
}

func NewService(payments PaymentRepository, invoices InvoiceLedger, reservations ReservationBilling) *Service {
	return &Service{
		payments:     payments,
		invoices:     invoices,
		reservations: reservations,
	}
}

// Process records a completed payment. An invoice-tied payment is only
// accepted while the invoice is collectible (sent, or overdue at read time);
// when net completed payments then cover the invoice total, the invoice is
// marked paid. A linked reservation has its payment state mirrored to
// partial/paid.
func (s *Service) Process(ctx context.Context, req ProcessPaymentRequest, now time.Time) (*domain.Payment, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	p := &domain.Payment{
		MemberID:    req.MemberID,
		InvoiceID:   req.InvoiceID,
		AmountCents: req.AmountCents,
		Method:      domain.PaymentMethod(req.Method),
		Status:      domain.TxCompleted,
		Reference:   req.Reference,
	}

	covered := true
	if req.InvoiceID != nil {
		inv, err := s.invoices.GetByID(ctx, *req.InvoiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		switch inv.EffectiveStatus(now) {
		case domain.InvoiceSent, domain.InvoiceOverdue:
		default:
			return nil, ErrInvoiceNotPayable
		}

		if err := s.payments.Create(ctx, p); err != nil {
			return nil, err
		}

		sum, err := s.payments.SumCompletedForInvoice(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		covered = sum >= inv.TotalCents
		if covered {
			if err := s.invoices.MarkPaid(ctx, inv.ID, req.Method, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := s.payments.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	if req.ReservationID != 0 {
		state := domain.PaymentPaid
		if !covered {
			state = domain.PaymentPartial
		}
		if _, err := s.reservations.UpdatePaymentStatus(ctx, req.ReservationID, state); err != nil {
			// payment is already recorded; the mirror is best effort
			log.Printf("payment: reservation %d payment-state sync failed: %v", req.ReservationID, err)
		}
	}

	return p, nil
}

// Refund returns money against an earlier payment. Partial refunds accumulate
// on the same row; a refund can never exceed what is still refundable. A full
// refund reopens an invoice-tied payment's invoice and flips a linked
// reservation to refunded.
func (s *Service) Refund(ctx context.Context, paymentID int64, req RefundPaymentRequest, now time.Time) (*domain.Payment, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	p, full, err := s.payments.ApplyRefund(ctx, paymentID, req.AmountCents, req.Reason, now)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRefundTooLarge):
			return nil, ErrRefundExceedsPayment
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	if full {
		if p.InvoiceID != nil {
			if err := s.invoices.UpdateStatus(ctx, *p.InvoiceID, domain.InvoiceSent); err != nil {
				log.Printf("payment: invoice %d reopen after refund failed: %v", *p.InvoiceID, err)
			}
		}
		if req.ReservationID != 0 {
			if _, err := s.reservations.UpdatePaymentStatus(ctx, req.ReservationID, domain.PaymentRefunded); err != nil {
				log.Printf("payment: reservation %d payment-state sync failed: %v", req.ReservationID, err)
			}
		}
	}

	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	return s.payments.ListByMember(ctx, memberID)
}

func (s *Service) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return s.payments.ListByInvoice(ctx, invoiceID)
}

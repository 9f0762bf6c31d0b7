package invoice

import (
	"context"
	"errors"
	"math"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

// defaultDueDays is the payment term stamped on new invoices.
const defaultDueDays = 15

type Service struct {
	invoices InvoiceRepository
	members  MemberDirectory
	dueDays  int
}

func NewService(invoices InvoiceRepository, members MemberDirectory) *Service {
	return &Service{
		invoices: invoices,
		members:  members,
		dueDays:  defaultDueDays,
	}
}

// Generate creates a draft invoice from the given line items. Amounts are
// computed here, once; items are immutable afterwards and every later status
// change re-derives the totals as a drift guard.
func (s *Service) Generate(ctx context.Context, req GenerateInvoiceRequest, now time.Time) (*domain.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, ErrInvalidLineItem
	}

	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	var subtotal, tax, discount int64
	for _, it := range req.Items {
		if it.Description == "" || it.Quantity <= 0 || it.UnitPriceCents <= 0 || it.TaxRate < 0 || it.DiscountCents < 0 {
			return nil, ErrInvalidLineItem
		}

		base := int64(it.Quantity) * it.UnitPriceCents
		lineTax := lineTaxCents(base, it.TaxRate)

		subtotal += base
		tax += lineTax
		discount += it.DiscountCents

		items = append(items, domain.InvoiceItem{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TaxRate:        it.TaxRate,
			DiscountCents:  it.DiscountCents,
			LineTotalCents: base + lineTax - it.DiscountCents,
		})
	}

	inv := &domain.Invoice{
		MemberID:      req.MemberID,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, s.dueDays),
		Status:        domain.InvoiceDraft,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		DiscountCents: discount,
		TotalCents:    subtotal + tax - discount,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Send moves a draft invoice to sent. Overdue takes over automatically once
// the due date passes; there is no stored transition for it.
func (s *Service) Send(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoiceDraft {
		return nil, ErrInvalidTransition
	}
	if err := verifyTotals(inv); err != nil {
		return nil, err
	}
	if err := s.invoices.UpdateStatus(ctx, id, domain.InvoiceSent); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// MarkAsPaid settles a sent (or computed-overdue) invoice.
func (s *Service) MarkAsPaid(ctx context.Context, id int64, method string, now time.Time) (*domain.Invoice, error) {
	inv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	eff := inv.EffectiveStatus(now)
	if eff != domain.InvoiceSent && eff != domain.InvoiceOverdue {
		return nil, ErrNotPayable
	}
	if err := verifyTotals(inv); err != nil {
		return nil, err
	}
	if err := s.invoices.MarkPaid(ctx, id, method, now); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoiceDraft && inv.Status != domain.InvoiceSent {
		return nil, ErrInvalidTransition
	}
	if err := s.invoices.UpdateStatus(ctx, id, domain.InvoiceCancelled); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// GetByID resolves the overdue view state before returning.
func (s *Service) GetByID(ctx context.Context, id int64, now time.Time) (*domain.Invoice, error) {
	inv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Status = inv.EffectiveStatus(now)
	return inv, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int64, now time.Time) ([]domain.Invoice, error) {
	rows, err := s.invoices.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Status = rows[i].EffectiveStatus(now)
	}
	return rows, nil
}

func (s *Service) ListByStatus(ctx context.Context, status domain.InvoiceStatus, now time.Time) ([]domain.Invoice, error) {
	rows, err := s.invoices.ListByStatus(ctx, status, now)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Status = rows[i].EffectiveStatus(now)
	}
	return rows, nil
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func lineTaxCents(baseCents int64, rate float64) int64 {
	return int64(math.Round(float64(baseCents) * rate))
}

// verifyTotals recomputes the aggregate amounts from the stored items and
// rejects the mutation when the stored row has drifted.
func verifyTotals(inv *domain.Invoice) error {
	var subtotal, tax, discount int64
	for _, it := range inv.Items {
		base := int64(it.Quantity) * it.UnitPriceCents
		subtotal += base
		tax += lineTaxCents(base, it.TaxRate)
		discount += it.DiscountCents
	}
	if inv.SubtotalCents != subtotal || inv.TotalCents != subtotal+tax-discount {
		return ErrTotalMismatch
	}
	return nil
}

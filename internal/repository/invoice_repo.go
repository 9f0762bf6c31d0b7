package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coworking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create stores the invoice and its line items in one transaction and stamps
// a unique human-readable number (INV-YYYYMMDD-NNNN, per-day sequence). The
// sequence comes from an unlocked count, so two concurrent creates can pick
// the same number; the unique index rejects the loser and the create retries
// with a fresh count.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			day := inv.IssueDate.UTC().Format("20060102")

			var seq int64
			if err := tx.Model(&domain.Invoice{}).
				Where("number LIKE ?", "INV-"+day+"-%").
				Count(&seq).Error; err != nil {
				return err
			}
			inv.Number = fmt.Sprintf("INV-%s-%04d", day, seq+1)

			return tx.Create(inv).Error
		})
		if !isNumberCollision(err) {
			return err
		}
	}
	return err
}

func isNumberCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_invoices_number"
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := r.db.WithContext(ctx).Preload("Items").First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *InvoiceRepository) MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         domain.InvoicePaid,
			"paid_date":      &paidAt,
			"payment_method": method,
		}).Error
}

func (r *InvoiceRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.Invoice, error) {
	var rows []domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("member_id = ?", memberID).
		Order("issue_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByStatus filters on the stored status column. Overdue is a read-time
// state: callers asking for overdue get sent invoices past due instead.
func (r *InvoiceRepository) ListByStatus(ctx context.Context, status domain.InvoiceStatus, now time.Time) ([]domain.Invoice, error) {
	q := r.db.WithContext(ctx).Preload("Items")

	switch status {
	case domain.InvoiceOverdue:
		q = q.Where("status = ?", domain.InvoiceSent).Where("due_date < ?", now)
	case domain.InvoiceSent:
		q = q.Where("status = ?", domain.InvoiceSent).Where("due_date >= ?", now)
	default:
		q = q.Where("status = ?", status)
	}

	var rows []domain.Invoice
	if err := q.Order("issue_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

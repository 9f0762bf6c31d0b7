package invoice

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error
	ListByMember(ctx context.Context, memberID int64) ([]domain.Invoice, error)
	ListByStatus(ctx context.Context, status domain.InvoiceStatus, now time.Time) ([]domain.Invoice, error)
}

type MemberDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

package invoice

import (
	"context"
	"testing"
	"time"

	"coworking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	if args.Error(0) == nil {
		inv.ID = 301
		inv.Number = "INV-20261005-0001"
	}
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error {
	args := m.Called(ctx, id, method, paidAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByStatus(ctx context.Context, status domain.InvoiceStatus, now time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, status, now)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

type MockMemberDirectory struct {
	mock.Mock
}

func (m *MockMemberDirectory) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func newTestService() (*Service, *MockInvoiceRepository, *MockMemberDirectory) {
	invoices := new(MockInvoiceRepository)
	members := new(MockMemberDirectory)
	members.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Member{ID: 7, Status: domain.MemberActive}, nil).Maybe()
	return NewService(invoices, members), invoices, members
}

func issuedAt() time.Time {
	return time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)
}

// consistentInvoice builds a stored invoice whose aggregates match its items,
// so the drift guard passes.
func consistentInvoice(status domain.InvoiceStatus, due time.Time) *domain.Invoice {
	return &domain.Invoice{
		ID:       301,
		Number:   "INV-20261005-0001",
		MemberID: 7,
		DueDate:  due,
		Status:   status,
		Items: []domain.InvoiceItem{
			{Description: "Meeting Room A, 2h", Quantity: 2, UnitPriceCents: 50000, TaxRate: 0.1, LineTotalCents: 110000},
		},
		SubtotalCents: 100000,
		TaxCents:      10000,
		TotalCents:    110000,
	}
}

func TestGenerate_ComputesTotalsAndStartsDraft(t *testing.T) {
	service, invoices, _ := newTestService()
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := service.Generate(context.Background(), GenerateInvoiceRequest{
		MemberID: 7,
		Items: []LineItemRequest{
			{Description: "Hot desk, 3h", Quantity: 3, UnitPriceCents: 50000, TaxRate: 0.1},
			{Description: "Locker rental", Quantity: 1, UnitPriceCents: 20000, DiscountCents: 5000},
		},
	}, issuedAt())

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, int64(170000), inv.SubtotalCents)
	assert.Equal(t, int64(15000), inv.TaxCents)
	assert.Equal(t, int64(5000), inv.DiscountCents)
	assert.Equal(t, int64(180000), inv.TotalCents)
	assert.Equal(t, int64(165000), inv.Items[0].LineTotalCents)
	assert.Equal(t, int64(15000), inv.Items[1].LineTotalCents)
	assert.Equal(t, issuedAt().AddDate(0, 0, 15), inv.DueDate)
}

func TestGenerate_RejectsBadLineItems(t *testing.T) {
	service, _, _ := newTestService()

	cases := []LineItemRequest{
		{Description: "", Quantity: 1, UnitPriceCents: 100},
		{Description: "free desk", Quantity: 0, UnitPriceCents: 100},
		{Description: "negative", Quantity: 1, UnitPriceCents: 0},
	}
	for _, it := range cases {
		_, err := service.Generate(context.Background(), GenerateInvoiceRequest{
			MemberID: 7,
			Items:    []LineItemRequest{it},
		}, issuedAt())
		assert.ErrorIs(t, err, ErrInvalidLineItem)
	}

	_, err := service.Generate(context.Background(), GenerateInvoiceRequest{MemberID: 7}, issuedAt())
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestSend_DraftOnly(t *testing.T) {
	service, invoices, _ := newTestService()

	due := issuedAt().AddDate(0, 0, 15)
	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoiceDraft, due), nil).Once()
	invoices.On("UpdateStatus", mock.Anything, int64(301), domain.InvoiceSent).Return(nil)
	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoiceSent, due), nil).Once()

	inv, err := service.Send(context.Background(), 301)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceSent, inv.Status)

	invoices.On("GetByID", mock.Anything, int64(302)).Return(consistentInvoice(domain.InvoicePaid, due), nil)
	_, err = service.Send(context.Background(), 302)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkAsPaid_SentAndComputedOverdue(t *testing.T) {
	service, invoices, _ := newTestService()
	now := issuedAt()

	// due date already behind now: stored sent, effectively overdue
	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoiceSent, now.AddDate(0, 0, -1)), nil).Once()
	invoices.On("MarkPaid", mock.Anything, int64(301), "card", now).Return(nil)
	paid := consistentInvoice(domain.InvoicePaid, now.AddDate(0, 0, -1))
	paid.PaidDate = &now
	invoices.On("GetByID", mock.Anything, int64(301)).Return(paid, nil).Once()

	inv, err := service.MarkAsPaid(context.Background(), 301, "card", now)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.NotNil(t, inv.PaidDate)
}

func TestMarkAsPaid_DraftRejected(t *testing.T) {
	service, invoices, _ := newTestService()
	now := issuedAt()

	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoiceDraft, now.AddDate(0, 0, 15)), nil)

	_, err := service.MarkAsPaid(context.Background(), 301, "cash", now)
	assert.ErrorIs(t, err, ErrNotPayable)
	invoices.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkAsPaid_DriftGuard(t *testing.T) {
	service, invoices, _ := newTestService()
	now := issuedAt()

	drifted := consistentInvoice(domain.InvoiceSent, now.AddDate(0, 0, 15))
	drifted.TotalCents = 999999

	invoices.On("GetByID", mock.Anything, int64(301)).Return(drifted, nil)

	_, err := service.MarkAsPaid(context.Background(), 301, "cash", now)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestEffectiveStatus_OverdueIsComputed(t *testing.T) {
	service, invoices, _ := newTestService()
	now := issuedAt()

	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoiceSent, now.Add(-time.Hour)), nil)

	inv, err := service.GetByID(context.Background(), 301, now)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceOverdue, inv.Status)
}

func TestCancel_PaidRejected(t *testing.T) {
	service, invoices, _ := newTestService()

	invoices.On("GetByID", mock.Anything, int64(301)).Return(consistentInvoice(domain.InvoicePaid, issuedAt()), nil)

	_, err := service.Cancel(context.Background(), 301)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

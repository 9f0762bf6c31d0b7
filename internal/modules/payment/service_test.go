package payment

import (
	"context"
	"testing"
	"time"

	"coworking/internal/domain"
	"coworking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 901
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ApplyRefund(ctx context.Context, paymentID, amountCents int64, reason string, at time.Time) (*domain.Payment, bool, error) {
	args := m.Called(ctx, paymentID, amountCents, reason, at)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Bool(1), args.Error(2)
}

func (m *MockPaymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID int64) (int64, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) ListByMember(ctx context.Context, memberID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockInvoiceLedger struct {
	mock.Mock
}

func (m *MockInvoiceLedger) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceLedger) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvoiceLedger) MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error {
	args := m.Called(ctx, id, method, paidAt)
	return args.Error(0)
}

type MockReservationBilling struct {
	mock.Mock
}

func (m *MockReservationBilling) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentState) (*domain.Reservation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func newTestService() (*Service, *MockPaymentRepository, *MockInvoiceLedger, *MockReservationBilling) {
	payments := new(MockPaymentRepository)
	invoices := new(MockInvoiceLedger)
	reservations := new(MockReservationBilling)
	return NewService(payments, invoices, reservations), payments, invoices, reservations
}

func paidAt() time.Time {
	return time.Date(2026, 10, 6, 14, 0, 0, 0, time.UTC)
}

func TestProcess_RejectsNonPositiveAmount(t *testing.T) {
	service, _, _, _ := newTestService()

	for _, amount := range []int64{0, -500} {
		_, err := service.Process(context.Background(), ProcessPaymentRequest{
			MemberID:    7,
			AmountCents: amount,
			Method:      "card",
		}, paidAt())
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestProcess_StandalonePaymentCompletes(t *testing.T) {
	service, payments, _, _ := newTestService()
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:    7,
		AmountCents: 50000,
		Method:      "cash",
	}, paidAt())

	assert.NoError(t, err)
	assert.Equal(t, domain.TxCompleted, p.Status)
	assert.Equal(t, int64(50000), p.AmountCents)
}

func TestProcess_DraftInvoiceRejected(t *testing.T) {
	service, payments, invoices, _ := newTestService()

	invID := int64(301)
	invoices.On("GetByID", mock.Anything, invID).Return(&domain.Invoice{
		ID:         invID,
		Status:     domain.InvoiceDraft,
		TotalCents: 110000,
	}, nil)

	_, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:    7,
		InvoiceID:   &invID,
		AmountCents: 110000,
		Method:      "card",
	}, paidAt())

	assert.ErrorIs(t, err, ErrInvoiceNotPayable)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	invoices.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_PaidInvoiceRejected(t *testing.T) {
	service, payments, invoices, _ := newTestService()

	invID := int64(301)
	invoices.On("GetByID", mock.Anything, invID).Return(&domain.Invoice{
		ID:         invID,
		Status:     domain.InvoicePaid,
		TotalCents: 110000,
	}, nil)

	_, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:    7,
		InvoiceID:   &invID,
		AmountCents: 500,
		Method:      "card",
	}, paidAt())

	assert.ErrorIs(t, err, ErrInvoiceNotPayable)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcess_OverdueInvoiceStillCollectible(t *testing.T) {
	service, payments, invoices, _ := newTestService()

	// sent invoice past its due date reads as overdue and stays payable
	invID := int64(301)
	invoices.On("GetByID", mock.Anything, invID).Return(&domain.Invoice{
		ID:         invID,
		Status:     domain.InvoiceSent,
		DueDate:    paidAt().AddDate(0, 0, -10),
		TotalCents: 110000,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	payments.On("SumCompletedForInvoice", mock.Anything, invID).Return(int64(110000), nil)
	invoices.On("MarkPaid", mock.Anything, invID, "card", paidAt()).Return(nil)

	_, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:    7,
		InvoiceID:   &invID,
		AmountCents: 110000,
		Method:      "card",
	}, paidAt())

	assert.NoError(t, err)
	invoices.AssertExpectations(t)
}

func TestProcess_PartialCoverageLeavesInvoiceOpen(t *testing.T) {
	service, payments, invoices, reservations := newTestService()

	invID := int64(301)
	invoices.On("GetByID", mock.Anything, invID).Return(&domain.Invoice{
		ID:         invID,
		Status:     domain.InvoiceSent,
		TotalCents: 110000,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	payments.On("SumCompletedForInvoice", mock.Anything, invID).Return(int64(60000), nil)
	reservations.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentPartial).
		Return(&domain.Reservation{ID: 42, PaymentStatus: domain.PaymentPartial}, nil)

	_, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:      7,
		InvoiceID:     &invID,
		ReservationID: 42,
		AmountCents:   60000,
		Method:        "card",
	}, paidAt())

	assert.NoError(t, err)
	invoices.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	reservations.AssertExpectations(t)
}

func TestProcess_FullCoverageMarksInvoicePaid(t *testing.T) {
	service, payments, invoices, reservations := newTestService()

	invID := int64(301)
	invoices.On("GetByID", mock.Anything, invID).Return(&domain.Invoice{
		ID:         invID,
		Status:     domain.InvoiceSent,
		TotalCents: 110000,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	payments.On("SumCompletedForInvoice", mock.Anything, invID).Return(int64(110000), nil)
	invoices.On("MarkPaid", mock.Anything, invID, "card", paidAt()).Return(nil)
	reservations.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentPaid).
		Return(&domain.Reservation{ID: 42, PaymentStatus: domain.PaymentPaid}, nil)

	_, err := service.Process(context.Background(), ProcessPaymentRequest{
		MemberID:      7,
		InvoiceID:     &invID,
		ReservationID: 42,
		AmountCents:   110000,
		Method:        "card",
	}, paidAt())

	assert.NoError(t, err)
	invoices.AssertExpectations(t)
	reservations.AssertExpectations(t)
}

func TestRefund_PartialThenExceeding(t *testing.T) {
	service, payments, _, _ := newTestService()

	payments.On("ApplyRefund", mock.Anything, int64(901), int64(30000), "double charge", paidAt()).
		Return(&domain.Payment{
			ID:            901,
			AmountCents:   110000,
			RefundedCents: 30000,
			Status:        domain.TxCompleted,
		}, false, nil)

	p, err := service.Refund(context.Background(), 901, RefundPaymentRequest{
		AmountCents: 30000,
		Reason:      "double charge",
	}, paidAt())

	assert.NoError(t, err)
	assert.Equal(t, int64(80000), p.RefundableCents())
	assert.Equal(t, domain.TxCompleted, p.Status)

	payments.On("ApplyRefund", mock.Anything, int64(901), int64(90000), "too much", paidAt()).
		Return(nil, false, repository.ErrRefundTooLarge)

	_, err = service.Refund(context.Background(), 901, RefundPaymentRequest{
		AmountCents: 90000,
		Reason:      "too much",
	}, paidAt())
	assert.ErrorIs(t, err, ErrRefundExceedsPayment)
}

func TestRefund_FullReopensInvoiceAndFlipsReservation(t *testing.T) {
	service, payments, invoices, reservations := newTestService()

	invID := int64(301)
	payments.On("ApplyRefund", mock.Anything, int64(901), int64(110000), "event cancelled", paidAt()).
		Return(&domain.Payment{
			ID:            901,
			InvoiceID:     &invID,
			AmountCents:   110000,
			RefundedCents: 110000,
			Status:        domain.TxRefunded,
		}, true, nil)
	invoices.On("UpdateStatus", mock.Anything, invID, domain.InvoiceSent).Return(nil)
	reservations.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentRefunded).
		Return(&domain.Reservation{ID: 42, PaymentStatus: domain.PaymentRefunded}, nil)

	p, err := service.Refund(context.Background(), 901, RefundPaymentRequest{
		AmountCents:   110000,
		Reason:        "event cancelled",
		ReservationID: 42,
	}, paidAt())

	assert.NoError(t, err)
	assert.Equal(t, domain.TxRefunded, p.Status)
	assert.Equal(t, int64(0), p.RefundableCents())
	invoices.AssertExpectations(t)
	reservations.AssertExpectations(t)
}

func TestRefund_ZeroAmountRejected(t *testing.T) {
	service, payments, _, _ := newTestService()

	_, err := service.Refund(context.Background(), 901, RefundPaymentRequest{
		AmountCents: 0,
		Reason:      "noop",
	}, paidAt())

	assert.ErrorIs(t, err, ErrInvalidAmount)
	payments.AssertNotCalled(t, "ApplyRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"coworking/internal/database"
	"coworking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInvoiceDB(t *testing.T) *InvoiceRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewInvoiceRepository(db)
}

func TestCreate_AssignsPerDaySequence(t *testing.T) {
	repo := setupInvoiceDB(t)
	ctx := context.Background()

	issue := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)

	first := &domain.Invoice{MemberID: 1, IssueDate: issue, Status: domain.InvoiceDraft, TotalCents: 100}
	second := &domain.Invoice{MemberID: 1, IssueDate: issue, Status: domain.InvoiceDraft, TotalCents: 200}
	nextDay := &domain.Invoice{MemberID: 1, IssueDate: issue.AddDate(0, 0, 1), Status: domain.InvoiceDraft, TotalCents: 300}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, nextDay))

	assert.Equal(t, "INV-20261005-0001", first.Number)
	assert.Equal(t, "INV-20261005-0002", second.Number)
	assert.Equal(t, "INV-20261006-0001", nextDay.Number)
}

func TestIsNumberCollision(t *testing.T) {
	assert.True(t, isNumberCollision(&pgconn.PgError{Code: "23505", ConstraintName: "idx_invoices_number"}))
	assert.False(t, isNumberCollision(&pgconn.PgError{Code: "23505", ConstraintName: "idx_no_double_booking"}))
	assert.False(t, isNumberCollision(errors.New("connection reset")))
	assert.False(t, isNumberCollision(nil))
}

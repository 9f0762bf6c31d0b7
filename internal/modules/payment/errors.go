package payment

import "errors"

var (
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrInvoiceNotPayable    = errors.New("invoice is not payable in its current state")
	ErrRefundExceedsPayment = errors.New("refund exceeds the remaining payment balance")
	ErrNotFound             = errors.New("payment not found")
)

package invoice

import "errors"

var (
	ErrInvalidLineItem   = errors.New("invoice line item is invalid")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
	ErrNotPayable        = errors.New("invoice is not payable in its current status")
	ErrTotalMismatch     = errors.New("stored invoice total does not match its items")
	ErrNotFound          = errors.New("invoice not found")
)

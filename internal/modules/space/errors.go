package space

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("space or member not found")
	ErrInvalidPayload = errors.New("payload failed validation")
)

// ValidationError carries the per-field failures up to the transport layer.
// It unwraps to ErrInvalidPayload so callers can still match the sentinel.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidPayload, e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPayload
}

package maintenance

import "errors"

var (
	ErrAlreadyAssigned   = errors.New("request is already assigned or closed")
	ErrInvalidTransition = errors.New("invalid request status transition")
	ErrInvalidStatus     = errors.New("unknown maintenance status")
	ErrNotFound          = errors.New("maintenance request not found")
)

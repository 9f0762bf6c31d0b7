package reservation

import "errors"

var (
	ErrInvalidInterval   = errors.New("end time must be after start time")
	ErrSlotConflict      = errors.New("space is not available for the requested interval")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrNotConfirmed      = errors.New("reservation is not confirmed")
	ErrAlreadyCheckedIn  = errors.New("reservation is already checked in")
	ErrNotCheckedIn      = errors.New("reservation has not been checked in")
	ErrAlreadyCheckedOut = errors.New("reservation is already checked out")
	ErrMemberNotBookable = errors.New("member is not allowed to book")
	ErrNotFound          = errors.New("reservation not found")
)

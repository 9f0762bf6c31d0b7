package repository

import "errors"

var (
	// ErrSlotTaken is returned when an insert would overlap an active
	// reservation for the same space.
	ErrSlotTaken = errors.New("time slot is already reserved")

	// ErrSpaceUnavailable is returned when the space is flagged unavailable
	// or not operational.
	ErrSpaceUnavailable = errors.New("space is not available for booking")
)

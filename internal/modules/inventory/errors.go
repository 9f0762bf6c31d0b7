package inventory

import "errors"

var (
	ErrNegativeStock  = errors.New("adjustment would drive stock below zero")
	ErrReasonRequired = errors.New("stock adjustments require a reason")
	ErrNotFound       = errors.New("inventory item not found")
)

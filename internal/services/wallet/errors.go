package wallet

import "errors"

// Service errors
var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")
)

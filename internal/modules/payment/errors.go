package payment

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAmountMismatch  = errors.New("amount does not match booking total")
	ErrValidation      = errors.New("invalid payment request")
)

package bank

import "errors"

var (
	// ErrBadAmount means the amount was zero or negative.
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrInsufficient means the balance cannot cover the requested amount.
	ErrInsufficient = errors.New("insufficient balance")

	// ErrBadPIN means the PIN is outside the 4-6 digit range.
	ErrBadPIN = errors.New("PIN must be 4 to 6 digits")
)

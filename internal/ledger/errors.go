package ledger

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts and amounts with more
	// than two decimal places.
	ErrInvalidAmount = errors.New("amount must be a positive value with at most 2 decimal places")

	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrCreateExhausted is returned when every generated account number
	// collided within the bounded retry count.
	ErrCreateExhausted = errors.New("could not allocate a unique account number")
)

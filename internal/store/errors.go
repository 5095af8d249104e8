package store

import "errors"

var (
	ErrAccountExists     = errors.New("account number already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrBusy              = errors.New("store is busy, try again")
)

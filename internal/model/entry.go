package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one immutable ledger record. FromAccount is empty for deposits
// (the money comes from outside the tracked account set).
type Entry struct {
	ID          int64
	Reference   string
	Kind        string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// IsDeposit reports whether the entry credits an account from an external source.
func (e Entry) IsDeposit() bool {
	return e.FromAccount == ""
}

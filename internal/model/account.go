package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a balance-holding entity identified by a fixed-length numeric
// account number. The balance is an exact decimal with scale 2.
type Account struct {
	ID        int64
	Number    string
	Email     string
	Role      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/constants"
)

// Amounts cross the store boundary as integer cents; everywhere else they are
// exact decimals with scale 2. Binary floating point never touches money.

func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// DecimalToCents converts an exact decimal to integer cents. Values with more
// than two decimal places fail with ErrInvalidAmount rather than being
// rounded: silent rounding is how ledgers drift.
func DecimalToCents(d decimal.Decimal) (int64, error) {
	if d.Exponent() < -2 {
		return 0, ErrInvalidAmount
	}
	return d.Mul(decimal.New(constants.CentsPerUnit, 0)).IntPart(), nil
}

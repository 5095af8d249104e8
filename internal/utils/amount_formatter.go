package utils

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/constants"
)

// FormatAmount renders a decimal amount with exactly 2 decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatSigned renders a signed amount with a leading + or - sign.
func FormatSigned(amount decimal.Decimal) string {
	if amount.Sign() >= 0 {
		return "+" + amount.StringFixed(2)
	}
	return amount.StringFixed(2)
}

func FormatTimestamp(t time.Time) string {
	return t.Format(constants.DateTimeFormat)
}

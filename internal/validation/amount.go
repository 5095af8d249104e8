package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a positive decimal amount with at most 2 decimal places.
// Amounts are exact decimals end to end; nothing here goes through float64.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", input)
	}

	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount can have at most 2 decimal places")
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than 0")
	}

	return amount, nil
}

// ParseInitialBalance accepts zero as well; empty input means zero.
func ParseInitialBalance(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "0" {
		return decimal.Zero, nil
	}

	balance, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number format")
	}

	if balance.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("balance can have at most 2 decimal places")
	}

	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("initial balance can't be negative")
	}

	return balance, nil
}

// AmountPrompt adapts ParseAmount for interactive prompt validators.
func AmountPrompt(s string) error {
	_, err := ParseAmount(s)
	return err
}

// InitialBalancePrompt adapts ParseInitialBalance for interactive prompt validators.
func InitialBalancePrompt(s string) error {
	_, err := ParseInitialBalance(s)
	return err
}

package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountNumber(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateAccountNumber("1234567890"))
	assert.NoError(t, ValidateAccountNumber(" 1234567890 "))

	for name, input := range map[string]string{
		"too_short":   "123456789",
		"too_long":    "12345678901",
		"letters":     "12345abcde",
		"empty":       "",
		"punctuation": "12345-7890",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, ValidateAccountNumber(input))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("alice@example.com"))

	for name, input := range map[string]string{
		"empty":     "",
		"no_at":     "alice.example.com",
		"no_domain": "alice@",
		"no_dot":    "alice@example",
		"no_local":  "@example.com",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, ValidateEmail(input))
		})
	}
}

func TestValidateRole(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRole("user"))
	assert.NoError(t, ValidateRole("operator"))
	assert.Error(t, ValidateRole("admin"))
	assert.Error(t, ValidateRole(""))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for input, want := range map[string]string{
			"100":    "100",
			"100.5":  "100.5",
			"100.50": "100.50",
			"0.01":   "0.01",
		} {
			amount, err := ParseAmount(input)
			require.NoError(t, err, input)
			assert.True(t, decimal.RequireFromString(want).Equal(amount))
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for name, input := range map[string]string{
			"empty":        "",
			"zero":         "0",
			"negative":     "-5",
			"not_a_number": "ten",
			"sub_cent":     "1.005",
		} {
			_, err := ParseAmount(input)
			assert.Error(t, err, name)
		}
	})
}

func TestParseInitialBalance(t *testing.T) {
	t.Parallel()

	balance, err := ParseInitialBalance("")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = ParseInitialBalance("0")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = ParseInitialBalance("100.50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100.50").Equal(balance))

	_, err = ParseInitialBalance("-1")
	assert.Error(t, err)

	_, err = ParseInitialBalance("1.005")
	assert.Error(t, err)
}

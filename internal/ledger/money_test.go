package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		cents int64
	}{
		{"0", 0},
		{"1", 100},
		{"0.5", 50},
		{"100.25", 10025},
		{"-3.10", -310},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			cents, err := DecimalToCents(decimal.RequireFromString(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.cents, cents)
		})
	}

	t.Run("sub_cent_precision_rejected", func(t *testing.T) {
		t.Parallel()
		_, err := DecimalToCents(decimal.RequireFromString("1.005"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestCentsToDecimalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, cents := range []int64{0, 1, 99, 10000, -250} {
		d := CentsToDecimal(cents)
		back, err := DecimalToCents(d)
		require.NoError(t, err)
		assert.Equal(t, cents, back)
	}

	assert.Equal(t, "123.45", CentsToDecimal(12345).StringFixed(2))
}

package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallybook/tally/internal/model"
)

func TestEntryDirection(t *testing.T) {
	t.Parallel()

	transfer := model.Entry{
		Kind:        "transfer",
		FromAccount: "1111111111",
		ToAccount:   "2222222222",
		Amount:      decimal.RequireFromString("40.00"),
	}

	deposit := model.Entry{
		Kind:      "deposit",
		ToAccount: "1111111111",
		Amount:    decimal.RequireFromString("100.00"),
	}

	t.Run("destination_sees_in", func(t *testing.T) {
		t.Parallel()
		direction, signed := EntryDirection(transfer, "2222222222")
		assert.Equal(t, DirectionIn, direction)
		assert.True(t, decimal.RequireFromString("40.00").Equal(signed))
	})

	t.Run("source_sees_out", func(t *testing.T) {
		t.Parallel()
		direction, signed := EntryDirection(transfer, "1111111111")
		assert.Equal(t, DirectionOut, direction)
		assert.True(t, decimal.RequireFromString("-40.00").Equal(signed))
	})

	t.Run("deposit_is_always_in", func(t *testing.T) {
		t.Parallel()
		direction, signed := EntryDirection(deposit, "1111111111")
		assert.Equal(t, DirectionIn, direction)
		assert.True(t, decimal.RequireFromString("100.00").Equal(signed))
	})

	t.Run("bystander_sees_nothing", func(t *testing.T) {
		t.Parallel()
		direction, signed := EntryDirection(transfer, "3333333333")
		assert.Equal(t, DirectionNone, direction)
		assert.True(t, signed.IsZero())
	})
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "in", DirectionIn.String())
	assert.Equal(t, "out", DirectionOut.String())
	assert.Equal(t, "none", DirectionNone.String())
}

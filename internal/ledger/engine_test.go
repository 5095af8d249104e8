package ledger

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallybook/tally/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, store.Repository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tally.db")
	s, err := store.NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return NewEngine(s), s
}

func mustAccount(t *testing.T, repo store.Repository, number, email string, balanceCents int64) {
	t.Helper()
	_, err := repo.CreateAccount(number, email, "user", balanceCents)
	require.NoError(t, err)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balanceOf(t *testing.T, repo store.Repository, number string) decimal.Decimal {
	t.Helper()
	acc, err := repo.GetAccountByNumber(number)
	require.NoError(t, err)
	return CentsToDecimal(acc.Balance)
}

func TestDeposit(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 0)

	result, err := engine.Deposit("1111111111", dec("100.00"), "")
	require.NoError(t, err)
	assert.True(t, dec("100.00").Equal(result.NewBalance))
	assert.False(t, result.Replayed)
	assert.Equal(t, "deposit", result.Entry.Kind)
	assert.Empty(t, result.Entry.FromAccount)

	entries, err := repo.GetEntriesByAccount("1111111111")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(10000), entries[0].Amount)

	t.Run("missing_account", func(t *testing.T) {
		_, err := engine.Deposit("0000000000", dec("5.00"), "")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("invalid_amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-5.00", "1.005"} {
			_, err := engine.Deposit("1111111111", dec(amount), "")
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
		}
		assert.True(t, dec("100.00").Equal(balanceOf(t, repo, "1111111111")))
	})
}

func TestDepositReplay(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 0)

	first, err := engine.Deposit("1111111111", dec("50.00"), "payroll-1")
	require.NoError(t, err)
	require.False(t, first.Replayed)

	second, err := engine.Deposit("1111111111", dec("50.00"), "payroll-1")
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Entry.ID, second.Entry.ID)
	assert.True(t, dec("50.00").Equal(second.NewBalance), "replay must not apply again")

	entries, err := repo.GetAllEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTransfer(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 10000)
	mustAccount(t, repo, "2222222222", "b@example.com", 0)

	result, err := engine.Transfer("1111111111", "2222222222", dec("40.00"), "")
	require.NoError(t, err)
	assert.True(t, dec("60.00").Equal(result.SourceBalance))
	assert.True(t, dec("40.00").Equal(result.DestBalance))
	assert.Equal(t, "transfer", result.Entry.Kind)
	assert.Equal(t, "1111111111", result.Entry.FromAccount)

	entries, err := repo.GetAllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestTransferFailuresLeaveStateUntouched(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 1000)
	mustAccount(t, repo, "2222222222", "b@example.com", 0)

	assertUntouched := func(t *testing.T) {
		t.Helper()
		assert.True(t, dec("10.00").Equal(balanceOf(t, repo, "1111111111")))
		assert.True(t, dec("0.00").Equal(balanceOf(t, repo, "2222222222")))

		entries, err := repo.GetAllEntries()
		require.NoError(t, err)
		assert.Empty(t, entries, "failed transfer must not write a ledger entry")
	}

	t.Run("missing_destination", func(t *testing.T) {
		_, err := engine.Transfer("1111111111", "9999999999", dec("5.00"), "")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "destination")
		assertUntouched(t)
	})

	t.Run("missing_source", func(t *testing.T) {
		_, err := engine.Transfer("9999999999", "2222222222", dec("5.00"), "")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "source")
		assertUntouched(t)
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		_, err := engine.Transfer("1111111111", "2222222222", dec("50.00"), "")
		assert.ErrorIs(t, err, store.ErrInsufficientFunds)
		assertUntouched(t)
	})

	t.Run("self_transfer", func(t *testing.T) {
		_, err := engine.Transfer("1111111111", "1111111111", dec("5.00"), "")
		assert.ErrorIs(t, err, ErrSelfTransfer)
		assertUntouched(t)
	})

	t.Run("invalid_amount", func(t *testing.T) {
		_, err := engine.Transfer("1111111111", "2222222222", dec("-1"), "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assertUntouched(t)
	})
}

func TestConcurrentTransfersCannotOverdraw(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 10000)
	mustAccount(t, repo, "2222222222", "b@example.com", 10000)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Transfer("1111111111", "2222222222", dec("80.00"), "")
		}(i)
	}
	wg.Wait()

	var failed, succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, store.ErrInsufficientFunds)
			failed++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one transfer must win")
	assert.Equal(t, 1, failed)

	a := balanceOf(t, repo, "1111111111")
	b := balanceOf(t, repo, "2222222222")
	assert.True(t, dec("20.00").Equal(a))
	assert.True(t, dec("180.00").Equal(b))
	assert.True(t, dec("200.00").Equal(a.Add(b)), "transfers are zero-sum")
}

func TestOpposingTransfersDoNotDeadlock(t *testing.T) {
	engine, repo := newTestEngine(t)
	mustAccount(t, repo, "1111111111", "a@example.com", 100000)
	mustAccount(t, repo, "2222222222", "b@example.com", 100000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := engine.Transfer("1111111111", "2222222222", dec("1.00"), "")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := engine.Transfer("2222222222", "1111111111", dec("1.00"), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total := balanceOf(t, repo, "1111111111").Add(balanceOf(t, repo, "2222222222"))
	assert.True(t, dec("2000.00").Equal(total), "opposing transfers must conserve the total")
}

func TestCreateAccount(t *testing.T) {
	engine, repo := newTestEngine(t)

	acc, err := engine.CreateAccount("alice@example.com", "user", dec("100.00"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{9}$`), acc.Number)
	assert.True(t, dec("100.00").Equal(acc.Balance))

	t.Run("opening_balance_is_a_deposit_entry", func(t *testing.T) {
		entries, err := repo.GetEntriesByAccount(acc.Number)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "deposit", entries[0].Kind)
		assert.Nil(t, entries[0].FromAccount)
		assert.Equal(t, int64(10000), entries[0].Amount)
	})

	t.Run("zero_balance_writes_no_entry", func(t *testing.T) {
		acc, err := engine.CreateAccount("bob@example.com", "user", dec("0"))
		require.NoError(t, err)

		entries, err := repo.GetEntriesByAccount(acc.Number)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("negative_balance_rejected", func(t *testing.T) {
		_, err := engine.CreateAccount("carol@example.com", "user", dec("-1.00"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("duplicate_email_not_retried", func(t *testing.T) {
		_, err := engine.CreateAccount("alice@example.com", "user", dec("0"))
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

// The ledger must reconcile: every balance equals the signed sum of the
// entries naming that account, and transfers never change the system total.
func TestConservationAndReconciliation(t *testing.T) {
	engine, repo := newTestEngine(t)

	a, err := engine.CreateAccount("a@example.com", "user", dec("500.00"))
	require.NoError(t, err)
	b, err := engine.CreateAccount("b@example.com", "user", dec("0"))
	require.NoError(t, err)
	c, err := engine.CreateAccount("c@example.com", "user", dec("25.50"))
	require.NoError(t, err)

	_, err = engine.Deposit(b.Number, dec("100.00"), "")
	require.NoError(t, err)
	_, err = engine.Transfer(a.Number, b.Number, dec("200.00"), "")
	require.NoError(t, err)
	_, err = engine.Transfer(b.Number, c.Number, dec("50.25"), "")
	require.NoError(t, err)
	_, err = engine.Transfer(c.Number, a.Number, dec("75.00"), "")
	require.NoError(t, err)

	// Failed attempts must not disturb either property.
	_, err = engine.Transfer(c.Number, a.Number, dec("100000.00"), "")
	require.ErrorIs(t, err, store.ErrInsufficientFunds)

	deposited := dec("500.00").Add(dec("25.50")).Add(dec("100.00"))
	total := decimal.Zero
	for _, number := range []string{a.Number, b.Number, c.Number} {
		total = total.Add(balanceOf(t, repo, number))
	}
	assert.True(t, deposited.Equal(total), "system total equals total deposits")

	for _, number := range []string{a.Number, b.Number, c.Number} {
		entries, err := repo.GetEntriesByAccount(number)
		require.NoError(t, err)

		reconciled := decimal.Zero
		for _, stored := range entries {
			_, signed := EntryDirection(EntryFromStore(stored), number)
			reconciled = reconciled.Add(signed)
		}
		assert.True(t, reconciled.Equal(balanceOf(t, repo, number)),
			"account %s: balance must equal the signed entry sum", number)
	}
}

func TestRandomAccountNumber(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := randomAccountNumber()
		assert.Len(t, number, 10)
		assert.NotEqual(t, byte('0'), number[0])
		seen[number] = true
	}
	assert.Greater(t, len(seen), 990, "numbers should rarely collide")
}

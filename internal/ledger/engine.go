package ledger

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/constants"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/store"
)

// Engine orchestrates every balance mutation. Each operation is one
// all-or-nothing unit: the balance update(s) and the ledger entry describing
// them commit in the same store transaction or not at all.
type Engine struct {
	repo    store.Repository
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewEngine(repo store.Repository) *Engine {
	return &Engine{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

type DepositResult struct {
	Entry      model.Entry
	NewBalance decimal.Decimal
	// Replayed is true when the reference was already recorded and the
	// operation was not applied again.
	Replayed bool
}

type TransferResult struct {
	Entry         model.Entry
	SourceBalance decimal.Decimal
	DestBalance   decimal.Decimal
	Replayed      bool
}

// CreateAccount allocates a random fixed-length account number, retrying on
// collision up to a bounded attempt count. A positive initial balance is
// recorded as a deposit entry in the same transaction as the account row, so
// the ledger reconciles from the very first event.
func (e *Engine) CreateAccount(email, role string, initialBalance decimal.Decimal) (*model.Account, error) {
	initialCents, err := DecimalToCents(initialBalance)
	if err != nil || initialCents < 0 {
		return nil, fmt.Errorf("initial balance %s: %w", initialBalance, ErrInvalidAmount)
	}

	for attempt := 0; attempt < constants.MaxCreateAttempts; attempt++ {
		number := randomAccountNumber()

		var created *store.Account
		err = e.repo.ExecTx(func(repo store.Repository) error {
			acc, err := repo.CreateAccount(number, email, role, initialCents)
			if err != nil {
				return err
			}

			if initialCents > 0 {
				_, err = repo.AppendEntry(store.Entry{
					Reference: uuid.NewString(),
					Kind:      constants.KindDeposit,
					ToAccount: number,
					Amount:    initialCents,
					CreatedAt: time.Now().Unix(),
				})
				if err != nil {
					return err
				}
			}

			created = acc
			return nil
		})

		if errors.Is(err, store.ErrAccountExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return AccountFromStore(created), nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrCreateExhausted, constants.MaxCreateAttempts)
}

// Deposit credits an account from an external source. It cannot fail for
// insufficient funds.
func (e *Engine) Deposit(number string, amount decimal.Decimal, reference string) (*DepositResult, error) {
	cents, err := DecimalToCents(amount)
	if err != nil || cents <= 0 {
		return nil, fmt.Errorf("deposit amount %s: %w", amount, ErrInvalidAmount)
	}

	mu := e.accountLock(number)
	mu.Lock()
	defer mu.Unlock()

	if reference == "" {
		reference = uuid.NewString()
	} else if prior, err := e.repo.GetEntryByReference(reference); err == nil {
		acc, err := e.repo.GetAccountByNumber(number)
		if err != nil {
			return nil, err
		}
		return &DepositResult{
			Entry:      EntryFromStore(prior),
			NewBalance: CentsToDecimal(acc.Balance),
			Replayed:   true,
		}, nil
	} else if !errors.Is(err, store.ErrEntryNotFound) {
		return nil, err
	}

	var result DepositResult
	err = e.repo.ExecTx(func(repo store.Repository) error {
		newBalance, err := repo.ApplyDelta(number, cents)
		if err != nil {
			return err
		}

		entry, err := repo.AppendEntry(store.Entry{
			Reference: reference,
			Kind:      constants.KindDeposit,
			ToAccount: number,
			Amount:    cents,
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return err
		}

		result = DepositResult{
			Entry:      EntryFromStore(entry),
			NewBalance: CentsToDecimal(newBalance),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Transfer moves funds between two tracked accounts. The sufficiency check
// and both balance mutations happen under the source account's lock inside
// one store transaction; a failure at any step leaves both balances and the
// ledger exactly as they were.
func (e *Engine) Transfer(from, to string, amount decimal.Decimal, reference string) (*TransferResult, error) {
	cents, err := DecimalToCents(amount)
	if err != nil || cents <= 0 {
		return nil, fmt.Errorf("transfer amount %s: %w", amount, ErrInvalidAmount)
	}

	if from == to {
		return nil, fmt.Errorf("account '%s': %w", from, ErrSelfTransfer)
	}

	unlock := e.lockPair(from, to)
	defer unlock()

	if reference == "" {
		reference = uuid.NewString()
	} else if prior, err := e.repo.GetEntryByReference(reference); err == nil {
		return e.replayTransfer(prior)
	} else if !errors.Is(err, store.ErrEntryNotFound) {
		return nil, err
	}

	var result TransferResult
	err = e.repo.ExecTx(func(repo store.Repository) error {
		if _, err := repo.GetAccountByNumber(from); err != nil {
			return fmt.Errorf("source %w", err)
		}
		if _, err := repo.GetAccountByNumber(to); err != nil {
			return fmt.Errorf("destination %w", err)
		}

		sourceBalance, err := repo.ApplyDelta(from, -cents)
		if err != nil {
			return err
		}

		destBalance, err := repo.ApplyDelta(to, cents)
		if err != nil {
			return err
		}

		entry, err := repo.AppendEntry(store.Entry{
			Reference:   reference,
			Kind:        constants.KindTransfer,
			FromAccount: &from,
			ToAccount:   to,
			Amount:      cents,
			CreatedAt:   time.Now().Unix(),
		})
		if err != nil {
			return err
		}

		result = TransferResult{
			Entry:         EntryFromStore(entry),
			SourceBalance: CentsToDecimal(sourceBalance),
			DestBalance:   CentsToDecimal(destBalance),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (e *Engine) replayTransfer(prior *store.Entry) (*TransferResult, error) {
	result := &TransferResult{
		Entry:    EntryFromStore(prior),
		Replayed: true,
	}

	if prior.FromAccount != nil {
		src, err := e.repo.GetAccountByNumber(*prior.FromAccount)
		if err != nil {
			return nil, err
		}
		result.SourceBalance = CentsToDecimal(src.Balance)
	}

	dst, err := e.repo.GetAccountByNumber(prior.ToAccount)
	if err != nil {
		return nil, err
	}
	result.DestBalance = CentsToDecimal(dst.Balance)

	return result, nil
}

// randomAccountNumber picks uniformly from the 10-digit range, keeping the
// leading digit non-zero so the number survives round trips as text.
func randomAccountNumber() string {
	const low = 1_000_000_000
	return fmt.Sprintf("%010d", low+rand.Int64N(9*low))
}

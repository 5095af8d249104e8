package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/ledger"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/store"
	"github.com/tallybook/tally/internal/validation"
)

type LedgerService struct {
	repo   store.Repository
	engine *ledger.Engine
}

func NewLedgerService(repo store.Repository, engine *ledger.Engine) *LedgerService {
	return &LedgerService{repo: repo, engine: engine}
}

// HistoryRow is one ledger entry projected onto a viewpoint account: the
// stored entry plus the direction and signed amount as that account sees it.
type HistoryRow struct {
	Entry     model.Entry
	Direction ledger.Direction
	Signed    decimal.Decimal
}

// Deposit credits an account from an external source. Operator only.
func (ls *LedgerService) Deposit(caller Caller, number string, amount decimal.Decimal, reference string) (*ledger.DepositResult, error) {
	if !caller.Operator {
		return nil, ErrNotPermitted
	}

	if err := validation.ValidateAccountNumber(number); err != nil {
		return nil, err
	}

	return ls.engine.Deposit(number, amount, reference)
}

// Transfer moves funds from the caller's own account to the destination.
func (ls *LedgerService) Transfer(caller Caller, to string, amount decimal.Decimal, reference string) (*ledger.TransferResult, error) {
	if caller.Account == "" {
		return nil, fmt.Errorf("no source account configured for the caller")
	}

	if err := validation.ValidateAccountNumber(caller.Account); err != nil {
		return nil, fmt.Errorf("source %w", err)
	}
	if err := validation.ValidateAccountNumber(to); err != nil {
		return nil, fmt.Errorf("destination %w", err)
	}

	return ls.engine.Transfer(caller.Account, to, amount, reference)
}

func (ls *LedgerService) BalanceOf(number string) (decimal.Decimal, error) {
	if err := validation.ValidateAccountNumber(number); err != nil {
		return decimal.Zero, err
	}

	acc, err := ls.repo.GetAccountByNumber(number)
	if err != nil {
		return decimal.Zero, err
	}

	return ledger.CentsToDecimal(acc.Balance), nil
}

// HistoryOf returns the account's entries oldest first, each projected onto
// the account's viewpoint.
func (ls *LedgerService) HistoryOf(number string) ([]HistoryRow, error) {
	if err := validation.ValidateAccountNumber(number); err != nil {
		return nil, err
	}

	exists, err := ls.repo.AccountExists(number)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account '%s': %w", number, store.ErrAccountNotFound)
	}

	entries, err := ls.repo.GetEntriesByAccount(number)
	if err != nil {
		return nil, err
	}

	rows := make([]HistoryRow, 0, len(entries))
	for _, stored := range entries {
		entry := ledger.EntryFromStore(stored)
		direction, signed := ledger.EntryDirection(entry, number)
		rows = append(rows, HistoryRow{
			Entry:     entry,
			Direction: direction,
			Signed:    signed,
		})
	}

	return rows, nil
}

// AllHistory returns every entry in the ledger, oldest first. Operator only:
// the full ledger exposes other people's account activity.
func (ls *LedgerService) AllHistory(caller Caller) ([]model.Entry, error) {
	if !caller.Operator {
		return nil, ErrNotPermitted
	}

	entries, err := ls.repo.GetAllEntries()
	if err != nil {
		return nil, err
	}

	out := make([]model.Entry, 0, len(entries))
	for _, stored := range entries {
		out = append(out, ledger.EntryFromStore(stored))
	}
	return out, nil
}

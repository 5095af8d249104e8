package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/ledger"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/store"
	"github.com/tallybook/tally/internal/validation"
)

type AccountService struct {
	repo   store.Repository
	engine *ledger.Engine
}

func NewAccountService(repo store.Repository, engine *ledger.Engine) *AccountService {
	return &AccountService{repo: repo, engine: engine}
}

// CreateAccount opens a new account. Only operators may create accounts; the
// account number is allocated by the engine.
func (as *AccountService) CreateAccount(caller Caller, email, role string, initialBalance decimal.Decimal) (*model.Account, error) {
	if !caller.Operator {
		return nil, ErrNotPermitted
	}

	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidateRole(role); err != nil {
		return nil, err
	}

	return as.engine.CreateAccount(email, role, initialBalance)
}

func (as *AccountService) GetAccountByNumber(number string) (*model.Account, error) {
	if err := validation.ValidateAccountNumber(number); err != nil {
		return nil, err
	}

	acc, err := as.repo.GetAccountByNumber(number)
	if err != nil {
		return nil, err
	}

	return ledger.AccountFromStore(acc), nil
}

// GetAllAccounts lists every account, oldest first. Operator only: the full
// roster exposes other people's balances.
func (as *AccountService) GetAllAccounts(caller Caller) ([]*model.Account, error) {
	if !caller.Operator {
		return nil, ErrNotPermitted
	}

	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]*model.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, ledger.AccountFromStore(acc))
	}
	return out, nil
}

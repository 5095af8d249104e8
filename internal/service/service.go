package service

import (
	"github.com/tallybook/tally/internal/config"
	"github.com/tallybook/tally/internal/ledger"
	"github.com/tallybook/tally/internal/store"
)

type Service struct {
	Account *AccountService
	Ledger  *LedgerService
	Config  *config.Config
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	engine := ledger.NewEngine(repo)

	return &Service{
		Account: NewAccountService(repo, engine),
		Ledger:  NewLedgerService(repo, engine),
		Config:  cfg,
	}
}

package ledger

import (
	"time"

	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/store"
)

// AccountFromStore maps a stored account row to the service-facing model,
// converting the cents balance to an exact decimal.
func AccountFromStore(acc *store.Account) *model.Account {
	return &model.Account{
		ID:        acc.ID,
		Number:    acc.Number,
		Email:     acc.Email,
		Role:      acc.Role,
		Balance:   CentsToDecimal(acc.Balance),
		CreatedAt: time.Unix(acc.CreatedAt, 0),
		UpdatedAt: time.Unix(acc.UpdatedAt, 0),
	}
}

// EntryFromStore maps a stored ledger entry to the service-facing model.
func EntryFromStore(entry *store.Entry) model.Entry {
	e := model.Entry{
		ID:        entry.ID,
		Reference: entry.Reference,
		Kind:      entry.Kind,
		ToAccount: entry.ToAccount,
		Amount:    CentsToDecimal(entry.Amount),
		CreatedAt: time.Unix(entry.CreatedAt, 0),
	}
	if entry.FromAccount != nil {
		e.FromAccount = *entry.FromAccount
	}
	return e
}

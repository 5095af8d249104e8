package store

type AccountRepository interface {
	CreateAccount(number, email, role string, balance int64) (*Account, error)
	GetAccountByNumber(number string) (*Account, error)
	AccountExists(number string) (bool, error)
	GetAllAccounts() ([]*Account, error)
	// ApplyDelta adds delta (cents, may be negative) to an account's balance.
	// A delta that would drive the balance below zero fails with
	// ErrInsufficientFunds and leaves the row untouched.
	ApplyDelta(number string, delta int64) (int64, error)
}

type EntryRepository interface {
	AppendEntry(entry Entry) (*Entry, error)
	GetEntriesByAccount(number string) ([]*Entry, error)
	GetAllEntries() ([]*Entry, error)
	GetEntryByReference(reference string) (*Entry, error)
}

type Repository interface {
	AccountRepository
	EntryRepository

	// ExecTx runs fn against a transaction-scoped repository; all of fn's
	// writes commit together or roll back together.
	ExecTx(fn func(Repository) error) error

	Close() error
}

package store

type Account struct {
	ID        int64
	Number    string
	Email     string
	Role      string
	Balance   int64
	CreatedAt int64
	UpdatedAt int64
}

type Entry struct {
	ID          int64
	Reference   string
	Kind        string
	FromAccount *string
	ToAccount   string
	Amount      int64
	CreatedAt   int64
}

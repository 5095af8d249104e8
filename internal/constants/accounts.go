package constants

const (
	// AccountNumberLen is the fixed length of every account number.
	AccountNumberLen = 10

	// MaxCreateAttempts bounds the number of random account numbers tried
	// before account creation gives up on collisions.
	MaxCreateAttempts = 5

	MaxEmailLen = 255

	CentsPerUnit = 100
)

const (
	RoleUser     = "user"
	RoleOperator = "operator"
)

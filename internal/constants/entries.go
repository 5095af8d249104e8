package constants

const (
	// Entry kinds
	KindDeposit  = "deposit"
	KindTransfer = "transfer"

	// Date Layout
	DateTimeFormat = "2006-01-02 15:04"
)

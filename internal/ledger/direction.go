package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tallybook/tally/internal/model"
)

// Direction classifies a ledger entry from one account's point of view.
type Direction int

const (
	// DirectionNone means the viewpoint account is not a party to the entry.
	DirectionNone Direction = iota
	DirectionIn
	DirectionOut
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "none"
	}
}

// EntryDirection projects an entry onto a viewpoint account, returning the
// direction and the signed amount (negative when money leaves the viewpoint).
// Entries themselves stay direction-agnostic in storage.
func EntryDirection(entry model.Entry, viewpoint string) (Direction, decimal.Decimal) {
	switch viewpoint {
	case entry.ToAccount:
		return DirectionIn, entry.Amount
	case entry.FromAccount:
		return DirectionOut, entry.Amount.Neg()
	default:
		return DirectionNone, decimal.Zero
	}
}

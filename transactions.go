package finbook

import (
	"github.com/shopspring/decimal"
)

// Transaction records a single income or expense movement. A transaction is
// immutable once created: the ledger assigns its ID at creation time and it is
// owned by exactly one account afterwards, never shared or moved.
type Transaction struct {
	ID          int             // ID is unique and assigned by the ledger, never by storage.
	Date        Date            // Date is the calendar day the transaction occurred.
	Description string          // Description is a free-text label.
	Amount      decimal.Decimal // Amount is the magnitude; its sign is not validated.
	Category    string          // Category groups transactions for spending aggregation and budget matching.
	Kind        Kind            // Kind selects the sign of the effect on the balance.
}

// NewTransaction creates a transaction. The ID is expected to come from the
// ledger's allocator; storage only ever replays IDs it was given.
func NewTransaction(id int, day Date, description string, amount decimal.Decimal, category string, kind Kind) Transaction {
	return Transaction{
		ID:          id,
		Date:        day,
		Description: description,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
	}
}

// Equal reports whether two transactions carry the same field values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Kind == o.Kind
}

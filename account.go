package finbook

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Account holds a running balance and the ordered collection of transactions
// applied to it. Transaction order is insertion order, not chronological.
type Account struct {
	ID      int
	Name    string
	Balance decimal.Decimal

	transactions []Transaction
}

// NewAccount creates an account with the given identity and starting balance.
func NewAccount(id int, name string, balance decimal.Decimal) *Account {
	return &Account{ID: id, Name: name, Balance: balance}
}

// Apply appends the transaction to the account's owned sequence and adjusts
// the balance: +amount for Income, -amount for Expense. The amount sign is
// not validated; a negative amount skews the balance in the opposite
// direction silently.
func (a *Account) Apply(tx Transaction) {
	a.transactions = append(a.transactions, tx)
	switch tx.Kind {
	case Income:
		a.Balance = a.Balance.Add(tx.Amount)
	case Expense:
		a.Balance = a.Balance.Sub(tx.Amount)
	}
}

// Transactions returns an iterator over the account's transactions in
// insertion order.
func (a *Account) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range a.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// TransactionIDs returns the IDs of the owned transactions in insertion
// order. This is the reference list persisted with the account.
func (a *Account) TransactionIDs() []int {
	ids := make([]int, 0, len(a.transactions))
	for _, tx := range a.transactions {
		ids = append(ids, tx.ID)
	}
	return ids
}

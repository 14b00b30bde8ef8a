package finbook

import (
	"iter"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger owns the in-memory collections of accounts and budgets, assigns
// transaction IDs, and answers aggregate queries. One Ledger instance owns
// all mutable state for the lifetime of the process; there is no concurrent
// access.
type Ledger struct {
	accounts []*Account
	budgets  []*Budget
	nextID   int
}

// NewLedger creates a ledger around already-materialized collections. The
// next transaction ID is computed once, as one greater than the maximum ID
// found in the accounts' transactions, or 1 when there are none.
func NewLedger(accounts []*Account, budgets []*Budget) *Ledger {
	next := 1
	for _, a := range accounts {
		for tx := range a.Transactions() {
			if tx.ID >= next {
				next = tx.ID + 1
			}
		}
	}
	return &Ledger{accounts: accounts, budgets: budgets, nextID: next}
}

// AddTransaction allocates the next sequential transaction ID and constructs
// a transaction. If an account with accountID exists the transaction is
// applied to it, and for an Expense the first budget whose category matches
// case-insensitively accumulates the amount. If no account matches, the
// transaction is silently discarded; the ID counter advances regardless.
func (l *Ledger) AddTransaction(accountID int, description string, amount decimal.Decimal, category string, day Date, kind Kind) Transaction {
	tx := NewTransaction(l.nextID, day, description, amount, category, kind)
	l.nextID++

	account, ok := l.Account(accountID)
	if !ok {
		return tx
	}
	account.Apply(tx)

	if kind == Expense {
		for _, b := range l.budgets {
			if strings.EqualFold(b.Category, category) {
				b.Accumulate(amount)
				break
			}
		}
	}
	return tx
}

// AddBudget appends a new budget with zero accumulated spending. An existing
// budget with the same category is not checked for; duplicates remain and
// future expenses accumulate into whichever is found first.
func (l *Ledger) AddBudget(category string, limit decimal.Decimal) *Budget {
	b := NewBudget(category, limit)
	l.budgets = append(l.budgets, b)
	return b
}

// Account returns the account with the given ID, or false when none matches.
func (l *Ledger) Account(id int) (*Account, bool) {
	// Linear scan: data volumes are small.
	for _, a := range l.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Accounts returns an iterator over the accounts in their stable order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Budgets returns an iterator over the budgets in their stable order.
func (l *Ledger) Budgets() iter.Seq[*Budget] {
	return func(yield func(*Budget) bool) {
		for _, b := range l.budgets {
			if !yield(b) {
				return
			}
		}
	}
}

// TotalBalance returns the sum of all account balances.
func (l *Ledger) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// CategorySpending maps each category to its summed Expense amounts across
// every account's transactions. Categories are case-sensitive keys here,
// unlike the case-insensitive matching used for budget accumulation.
func (l *Ledger) CategorySpending() map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, a := range l.accounts {
		for tx := range a.Transactions() {
			if tx.Kind != Expense {
				continue
			}
			spending[tx.Category] = spending[tx.Category].Add(tx.Amount)
		}
	}
	return spending
}

// Transactions returns every transaction across every account, ordered by
// date descending. The sort is stable: same-day transactions keep their
// original relative order.
func (l *Ledger) Transactions() []Transaction {
	var txs []Transaction
	for _, a := range l.accounts {
		for tx := range a.Transactions() {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs
}

// Summary provides an at-a-glance overview of the ledger's state on a given
// date, ready for rendering.
type Summary struct {
	Date             Date
	TotalBalance     decimal.Decimal
	CategorySpending map[string]decimal.Decimal
	Budgets          []*Budget
}

// Summarize builds a summary of the ledger state.
func (l *Ledger) Summarize(on Date) *Summary {
	return &Summary{
		Date:             on,
		TotalBalance:     l.TotalBalance(),
		CategorySpending: l.CategorySpending(),
		Budgets:          l.budgets,
	}
}

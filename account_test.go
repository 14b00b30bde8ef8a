package finbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAccount_Apply(t *testing.T) {
	a := NewAccount(1, "Checking", dec("100.00"))

	a.Apply(NewTransaction(1, MustParseDate("2024-01-05"), "Salary", dec("50.00"), "Work", Income))
	if !a.Balance.Equal(dec("150.00")) {
		t.Errorf("balance after income = %s, want 150.00", a.Balance)
	}

	a.Apply(NewTransaction(2, MustParseDate("2024-01-06"), "Coffee", dec("4.50"), "Food", Expense))
	if !a.Balance.Equal(dec("145.50")) {
		t.Errorf("balance after expense = %s, want 145.50", a.Balance)
	}
}

// A negative amount is passed through, it skews the balance in the opposite
// direction without any validation.
func TestAccount_Apply_NegativeAmountPassthrough(t *testing.T) {
	a := NewAccount(1, "Checking", decimal.Zero)
	a.Apply(NewTransaction(1, MustParseDate("2024-01-05"), "Refund", dec("-10.00"), "Food", Expense))
	if !a.Balance.Equal(dec("10.00")) {
		t.Errorf("balance = %s, want 10.00", a.Balance)
	}
}

func TestAccount_InsertionOrder(t *testing.T) {
	a := NewAccount(1, "Checking", decimal.Zero)
	// Insertion order is not chronological; it must be preserved as-is.
	a.Apply(NewTransaction(1, MustParseDate("2024-03-01"), "later", dec("1.00"), "", Income))
	a.Apply(NewTransaction(2, MustParseDate("2024-01-01"), "earlier", dec("1.00"), "", Income))

	if got := a.TransactionIDs(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("TransactionIDs() = %v, want [1 2]", got)
	}
}

func TestBudget_AccumulateAndRemaining(t *testing.T) {
	b := NewBudget("Food", dec("100.00"))
	b.Accumulate(dec("30.00"))
	b.Accumulate(dec("80.00"))

	if !b.Spent.Equal(dec("110.00")) {
		t.Errorf("Spent = %s, want 110.00", b.Spent)
	}
	// No clamping at the limit: remaining goes negative.
	if !b.Remaining().Equal(dec("-10.00")) {
		t.Errorf("Remaining() = %s, want -10.00", b.Remaining())
	}
}

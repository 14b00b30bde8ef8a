package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finbook/finbook"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAmount(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"12.34", "USD", "$12.34"},
		{"-4.50", "USD", "-$4.50"},
		{"0", "USD", "$0.00"},
		{"1000", "EUR", "\u20ac1,000.00"},
	}
	for _, tt := range tests {
		if got := Amount(dec(tt.value), tt.currency); got != tt.want {
			t.Errorf("Amount(%s, %s) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(decimal.Zero, "USD"); got != "-" {
		t.Errorf("SignedAmount(0) = %q, want %q", got, "-")
	}
	if got := SignedAmount(dec("5"), "USD"); got != "+$5.00" {
		t.Errorf("SignedAmount(5) = %q, want %q", got, "+$5.00")
	}
}

func TestTransactions_Table(t *testing.T) {
	txs := []finbook.Transaction{
		finbook.NewTransaction(1, finbook.MustParseDate("2024-01-05"), "Coffee", dec("4.50"), "Food", finbook.Expense),
	}
	out := Transactions(txs, "USD")

	for _, cell := range []string{"2024-01-05", "Coffee", "Food", "$4.50", "Expense"} {
		if !strings.Contains(out, cell) {
			t.Errorf("transactions table does not contain %q:\n%s", cell, out)
		}
	}
}

func TestBudgets_Table(t *testing.T) {
	budgets := []*finbook.Budget{
		{Category: "Food", Limit: dec("100.00"), Spent: dec("110.00")},
	}
	out := Budgets(budgets, "USD")

	// Overspent budgets show a negative remaining value.
	if !strings.Contains(out, "-$10.00") {
		t.Errorf("budget table does not show the negative remaining:\n%s", out)
	}
}

func TestSummary_SortsCategories(t *testing.T) {
	s := &finbook.Summary{
		Date:         finbook.MustParseDate("2024-01-31"),
		TotalBalance: dec("95.50"),
		CategorySpending: map[string]decimal.Decimal{
			"Transport": dec("20.00"),
			"Food":      dec("4.50"),
		},
	}
	out := Summary(s, "USD")

	food := strings.Index(out, "Food")
	transport := strings.Index(out, "Transport")
	if food < 0 || transport < 0 || food > transport {
		t.Errorf("categories not rendered in sorted order:\n%s", out)
	}
	if !strings.Contains(out, "$95.50") {
		t.Errorf("summary does not contain the total balance:\n%s", out)
	}
}

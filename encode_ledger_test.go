package finbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeTransactions_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"1,2024-01-05,Coffee,4.50,Food,Expense",
		"2,2024-01-06,Salary,1000.00,Work,Income",
		"not-a-number,2024-01-07,Bad id,1.00,Misc,Expense",
		"3,07/01/2024,Bad date,1.00,Misc,Expense",
		"4,2024-01-08,Bad amount,abc,Misc,Expense",
		"5,2024-01-09,Bad kind,1.00,Misc,Transfer",
		"6,2024-01-10,Too few fields,1.00,Misc",
		"7,2024-01-11,Too,many,fields,1.00,Misc,Expense",
		"",
		"8,2024-1-5,Permissive date,2.00,Misc,Income",
	}, "\n")

	txs, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTransactions() returned an unexpected error: %v", err)
	}

	wantIDs := []int{1, 2, 8}
	if len(txs) != len(wantIDs) {
		t.Fatalf("decoded %d transactions, want %d", len(txs), len(wantIDs))
	}
	for i, id := range wantIDs {
		if txs[i].ID != id {
			t.Errorf("transaction %d has ID %d, want %d", i, txs[i].ID, id)
		}
	}
}

func TestEncodeTransactions(t *testing.T) {
	txs := []Transaction{
		NewTransaction(1, MustParseDate("2024-01-05"), "Coffee", dec("4.5"), "Food", Expense),
		NewTransaction(2, MustParseDate("2024-01-06"), "Salary", dec("1000"), "Work", Income),
	}

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("EncodeTransactions() returned an unexpected error: %v", err)
	}

	want := "1,2024-01-05,Coffee,4.50,Food,Expense\n" +
		"2,2024-01-06,Salary,1000.00,Work,Income\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransactions() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDecodeAccounts_ReconciliatesTransactionRefs(t *testing.T) {
	txs := []Transaction{
		NewTransaction(1, MustParseDate("2024-01-05"), "Coffee", dec("4.50"), "Food", Expense),
		NewTransaction(2, MustParseDate("2024-01-06"), "Salary", dec("1000.00"), "Work", Income),
	}
	input := strings.Join([]string{
		"1,Checking,995.50,1;2;99", // 99 is unresolved and must be skipped
		"2,Savings,500.00",         // no transaction list at all
		"3,Broken",                 // fewer than 3 fields: dropped
		"4,Bad balance,abc",        // unparsable balance: dropped
	}, "\n")

	accounts, err := DecodeAccounts(strings.NewReader(input), txs)
	if err != nil {
		t.Fatalf("DecodeAccounts() returned an unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("decoded %d accounts, want 2", len(accounts))
	}

	checking := accounts[0]
	if checking.ID != 1 || checking.Name != "Checking" {
		t.Errorf("first account = %d %q, want 1 Checking", checking.ID, checking.Name)
	}
	// The persisted balance already reflects the replayed transactions and
	// must be preserved, not double-counted.
	if !checking.Balance.Equal(dec("995.50")) {
		t.Errorf("checking balance = %s, want 995.50", checking.Balance)
	}
	if got := checking.TransactionIDs(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("checking transaction IDs = %v, want [1 2]", got)
	}

	savings := accounts[1]
	if len(savings.TransactionIDs()) != 0 {
		t.Errorf("savings owns %d transactions, want 0", len(savings.TransactionIDs()))
	}
}

func TestEncodeAccounts(t *testing.T) {
	a := NewAccount(1, "Checking", decimal.Zero)
	a.Apply(NewTransaction(1, MustParseDate("2024-01-05"), "Coffee", dec("4.50"), "Food", Expense))
	a.Apply(NewTransaction(2, MustParseDate("2024-01-06"), "Salary", dec("1000.00"), "Work", Income))
	empty := NewAccount(2, "Savings", dec("500"))

	var buf bytes.Buffer
	if err := EncodeAccounts(&buf, []*Account{a, empty}); err != nil {
		t.Fatalf("EncodeAccounts() returned an unexpected error: %v", err)
	}

	want := "1,Checking,995.50,1;2\n" +
		"2,Savings,500.00\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeAccounts() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDecodeBudgets(t *testing.T) {
	input := strings.Join([]string{
		"Food,100.00,4.50",
		"Housing,800.00,0.00",
		"Broken,abc,0.00",
		"TooFew,1.00",
	}, "\n")

	budgets, err := DecodeBudgets(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeBudgets() returned an unexpected error: %v", err)
	}
	if len(budgets) != 2 {
		t.Fatalf("decoded %d budgets, want 2", len(budgets))
	}
	if budgets[0].Category != "Food" || !budgets[0].Limit.Equal(dec("100.00")) || !budgets[0].Spent.Equal(dec("4.50")) {
		t.Errorf("first budget = %+v, want Food 100.00 4.50", budgets[0])
	}
}

func TestEncodeBudgets(t *testing.T) {
	budgets := []*Budget{
		{Category: "Food", Limit: dec("100"), Spent: dec("4.5")},
	}

	var buf bytes.Buffer
	if err := EncodeBudgets(&buf, budgets); err != nil {
		t.Fatalf("EncodeBudgets() returned an unexpected error: %v", err)
	}
	if got, want := buf.String(), "Food,100.00,4.50\n"; got != want {
		t.Errorf("EncodeBudgets() = %q, want %q", got, want)
	}
}

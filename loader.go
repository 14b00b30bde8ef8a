package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// File names of the three flat files making up a ledger directory.
const (
	TransactionsFile = "transactions.csv"
	AccountsFile     = "accounts.csv"
	BudgetsFile      = "budgets.csv"
)

// DefaultAccountName is the name of the account synthesized when the
// accounts file is absent.
const DefaultAccountName = "Default Account"

// Load reads the three flat files from dir and reconstructs a consistent
// ledger. Transactions are loaded first so that account rows can resolve
// their transaction ID references against materialized transactions.
//
// A missing transactions or budgets file yields an empty set. A missing
// accounts file synthesizes a single fallback account (id 1, "Default
// Account", zero balance) instead of an empty set; starting from an empty
// directory must still leave a usable ledger.
func Load(dir string) (*Ledger, error) {
	txs, err := loadTransactions(filepath.Join(dir, TransactionsFile))
	if err != nil {
		return nil, err
	}
	accounts, err := loadAccounts(filepath.Join(dir, AccountsFile), txs)
	if err != nil {
		return nil, err
	}
	budgets, err := loadBudgets(filepath.Join(dir, BudgetsFile))
	if err != nil {
		return nil, err
	}
	return NewLedger(accounts, budgets), nil
}

func loadTransactions(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open transactions file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeTransactions(f)
}

func loadAccounts(path string, txs []Transaction) ([]*Account, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, accounts file %q does not exist, seeding a default account instead", path)
		return []*Account{NewAccount(1, DefaultAccountName, decimal.Zero)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeAccounts(f, txs)
}

func loadBudgets(path string) ([]*Budget, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open budgets file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeBudgets(f)
}

// Save rewrites the three files from the current ledger state. Each file is
// written to a temporary file and renamed into place, so a failed write
// leaves the previous file untouched. A failure on one file is logged and
// does not abort the remaining files; Save returns the joined errors.
//
// The transactions file flattens every account's transaction collection, one
// row per occurrence.
func Save(dir string, l *Ledger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create ledger directory %q: %w", dir, err)
	}

	var txs []Transaction
	var accounts []*Account
	for a := range l.Accounts() {
		accounts = append(accounts, a)
		for tx := range a.Transactions() {
			txs = append(txs, tx)
		}
	}
	var budgets []*Budget
	for b := range l.Budgets() {
		budgets = append(budgets, b)
	}

	var errs error
	if err := writeFile(dir, TransactionsFile, func(f *os.File) error {
		return EncodeTransactions(f, txs)
	}); err != nil {
		log.Printf("error saving transactions: %v", err)
		errs = errors.Join(errs, err)
	}
	if err := writeFile(dir, AccountsFile, func(f *os.File) error {
		return EncodeAccounts(f, accounts)
	}); err != nil {
		log.Printf("error saving accounts: %v", err)
		errs = errors.Join(errs, err)
	}
	if err := writeFile(dir, BudgetsFile, func(f *os.File) error {
		return EncodeBudgets(f, budgets)
	}); err != nil {
		log.Printf("error saving budgets: %v", err)
		errs = errors.Join(errs, err)
	}
	return errs
}

// writeFile encodes into a temporary file next to the target and renames it
// into place on success.
func writeFile(dir, name string, encode func(*os.File) error) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("could not replace %q: %w", name, err)
	}
	return nil
}

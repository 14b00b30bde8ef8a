// Package cmd implements the CLI application to manage a finbook ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finbook/finbook"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&budgetCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")

	c.Register(&accountsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&shellCmd{}, "")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerDir = flag.String("dir", "", `Path to the ledger directory holding the three data files (defaults to $FINBOOK_DIR or ".")`)

// ledgerPath resolves the ledger directory. Resolution is lazy so that a
// .env file loaded by the main package is taken into account.
func ledgerPath() string {
	if *ledgerDir != "" {
		return *ledgerDir
	}
	return envOr("FINBOOK_DIR", ".")
}

// envOr returns the environment value for key, or the fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// displayCurrency is the currency used only for formatting amounts on
// screen; the ledger itself is currency-agnostic.
func displayCurrency() string {
	return envOr("FINBOOK_CURRENCY", "USD")
}

// loadLedger loads the ledger from the app ledger directory.
func loadLedger() (*finbook.Ledger, error) {
	return finbook.Load(ledgerPath())
}

// saveLedger persists the full ledger state into the app ledger directory,
// overwriting prior files entirely.
func saveLedger(l *finbook.Ledger) subcommands.ExitStatus {
	if err := finbook.Save(ledgerPath(), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger to %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

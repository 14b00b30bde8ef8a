package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
)

// --- Accounts Command ---

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list accounts and their balances" }
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}
func (*accountsCmd) Usage() string {
	return `fbk accounts

  Lists every account with its running balance and transaction count.
`
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accounts := slices.Collect(ledger.Accounts())
	printMarkdown(renderer.Accounts(accounts, displayCurrency()))
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "overview of balances, spending and budgets" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-d <date>]

  Prints the total balance across accounts, spending summed per category, and
  the status of every budget.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Report date (YYYY-MM-DD)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := finbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(ledger.Summarize(day), displayCurrency()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finbook/finbook/renderer"
)

// --- Budget Command ---

type budgetCmd struct {
	category string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "create a budget for a spending category" }
func (*budgetCmd) Usage() string {
	return `fbk budget -c <category> <limit>

  Creates a budget with zero accumulated spending. Duplicate categories are
  accepted; expenses accumulate into whichever budget matches first.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category the budget applies to")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	limit, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing limit: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	b := ledger.AddBudget(c.category, limit)
	fmt.Printf("Budget %q created with limit %s\n", b.Category, renderer.Amount(b.Limit, displayCurrency()))
	return saveLedger(ledger)
}

// --- Budgets Command ---

type budgetsCmd struct{}

func (*budgetsCmd) Name() string             { return "budgets" }
func (*budgetsCmd) Synopsis() string         { return "list budgets with spending and remaining headroom" }
func (*budgetsCmd) SetFlags(f *flag.FlagSet) {}
func (*budgetsCmd) Usage() string {
	return `fbk budgets

  Lists every budget with its limit, accumulated spending, and remaining
  headroom (which may be negative).
`
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	budgets := slices.Collect(ledger.Budgets())
	printMarkdown(renderer.Budgets(budgets, displayCurrency()))
	return subcommands.ExitSuccess
}

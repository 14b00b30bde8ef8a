package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
)

// addTransaction loads the ledger, records one transaction and saves the
// full state back.
func addTransaction(c *entryCmd, f *flag.FlagSet, kind finbook.Kind) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
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

	tx := ledger.AddTransaction(c.account, c.description, amount, c.category, day, kind)
	if _, ok := ledger.Account(c.account); !ok {
		// The core treats a missing account as a silent no-op; the ID was
		// still consumed. Tell the operator anyway.
		fmt.Fprintf(os.Stderr, "Warning: no account with id %d, transaction discarded\n", c.account)
	} else {
		fmt.Println(renderer.Transaction(tx, displayCurrency()))
	}
	return saveLedger(ledger)
}

// entryCmd holds the flags shared by the income and expense commands.
type entryCmd struct {
	account     int
	date        string
	category    string
	description string
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 1, "Account ID the transaction belongs to")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Free-text category label")
	f.StringVar(&c.description, "m", "", "Description of the transaction")
}

// --- Income Command ---

type incomeCmd struct{ entryCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income transaction" }
func (*incomeCmd) Usage() string {
	return `fbk income [-a <account>] [-d <date>] [-c <category>] [-m <description>] <amount>

  Records an income transaction against an account. The amount is credited to
  the account balance.
`
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(&c.entryCmd, f, finbook.Income)
}

// --- Expense Command ---

type expenseCmd struct{ entryCmd }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense transaction" }
func (*expenseCmd) Usage() string {
	return `fbk expense [-a <account>] [-d <date>] [-c <category>] [-m <description>] <amount>

  Records an expense transaction against an account. The amount is debited
  from the account balance, and accumulated into the first budget whose
  category matches (case-insensitive).
`
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(&c.entryCmd, f, finbook.Expense)
}

// --- Tx Command ---

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `fbk tx [-head <n>] [-tail <n>]

  Lists every transaction across every account, most recent date first, with
  options for limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions := ledger.Transactions()
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions, displayCurrency()))
	return subcommands.ExitSuccess
}

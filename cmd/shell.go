package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
)

type shellCmd struct{}

func (*shellCmd) Name() string             { return "shell" }
func (*shellCmd) Synopsis() string         { return "interactive session on the ledger" }
func (*shellCmd) SetFlags(f *flag.FlagSet) {}
func (*shellCmd) Usage() string {
	return `fbk shell

  Opens an interactive session. Mutations stay in memory until 'save' or
  'quit'; an interrupt triggers a best-effort save before exiting.

  Commands:
    income <account> <amount> <category> [description...]
    expense <account> <amount> <category> [description...]
    budget <category> <limit>
    accounts | budgets | tx | summary
    save | quit
`
}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Best-effort save on abnormal termination. At-most-once, not a
	// durability guarantee.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		saveLedger(ledger)
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("finbook shell. Type 'help' for commands, 'quit' to save and exit.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "help":
			fmt.Print(c.Usage())
		case "income":
			c.addEntry(ledger, finbook.Income, words[1:])
		case "expense":
			c.addEntry(ledger, finbook.Expense, words[1:])
		case "budget":
			c.addBudget(ledger, words[1:])
		case "accounts":
			printMarkdown(renderer.Accounts(slices.Collect(ledger.Accounts()), displayCurrency()))
		case "budgets":
			printMarkdown(renderer.Budgets(slices.Collect(ledger.Budgets()), displayCurrency()))
		case "tx":
			printMarkdown(renderer.Transactions(ledger.Transactions(), displayCurrency()))
		case "summary":
			printMarkdown(renderer.Summary(ledger.Summarize(finbook.Today()), displayCurrency()))
		case "save":
			saveLedger(ledger)
			fmt.Println("Saved.")
		case "quit", "exit":
			signal.Stop(sigs)
			return saveLedger(ledger)
		default:
			fmt.Printf("unknown command %q, type 'help'\n", words[0])
		}
	}
	signal.Stop(sigs)
	return saveLedger(ledger)
}

func (c *shellCmd) addEntry(ledger *finbook.Ledger, kind finbook.Kind, args []string) {
	if len(args) < 3 {
		fmt.Println("usage: income|expense <account> <amount> <category> [description...]")
		return
	}
	accountID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("invalid account id %q\n", args[0])
		return
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Printf("invalid amount %q\n", args[1])
		return
	}
	description := strings.Join(args[3:], " ")

	tx := ledger.AddTransaction(accountID, description, amount, args[2], finbook.Today(), kind)
	if _, ok := ledger.Account(accountID); !ok {
		fmt.Printf("no account with id %d, transaction discarded\n", accountID)
		return
	}
	fmt.Println(renderer.Transaction(tx, displayCurrency()))
}

func (c *shellCmd) addBudget(ledger *finbook.Ledger, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: budget <category> <limit>")
		return
	}
	limit, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Printf("invalid limit %q\n", args[1])
		return
	}
	b := ledger.AddBudget(args[0], limit)
	fmt.Printf("Budget %q created with limit %s\n", b.Category, renderer.Amount(b.Limit, displayCurrency()))
}

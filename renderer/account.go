package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/finbook/finbook"
)

// Accounts renders a markdown table of accounts and their balances.
func Accounts(accounts []*finbook.Account, currency string) string {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Balance", "Transactions"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			Amount(a.Balance, currency),
			strconv.Itoa(len(a.TransactionIDs())),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")
	doc.Table(table)
	return doc.String()
}

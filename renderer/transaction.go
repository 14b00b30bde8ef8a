package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/finbook/finbook"
)

// Transaction renders a one-line description of a transaction.
func Transaction(tx finbook.Transaction, currency string) string {
	switch tx.Kind {
	case finbook.Income:
		return fmt.Sprintf("Received %s (%s) %s", Amount(tx.Amount, currency), tx.Category, tx.Description)
	case finbook.Expense:
		return fmt.Sprintf("Spent %s (%s) %s", Amount(tx.Amount, currency), tx.Category, tx.Description)
	default:
		return tx.Description
	}
}

// Transactions renders a markdown table of transactions in the given order.
func Transactions(txs []finbook.Transaction, currency string) string {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Date", "Description", "Category", "Amount", "Kind"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(tx.ID),
			tx.Date.String(),
			tx.Description,
			tx.Category,
			Amount(tx.Amount, currency),
			tx.Kind.String(),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")
	doc.Table(table)
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"

	"github.com/finbook/finbook"
)

// Summary renders the ledger overview: total balance, per-category spending
// and budget status.
func Summary(s *finbook.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ledger Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Balance: %s", Amount(s.TotalBalance, currency)))

	if len(s.CategorySpending) > 0 {
		doc.H2("Spending by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Spent"},
		}
		categories := slices.Collect(maps.Keys(s.CategorySpending))
		slices.Sort(categories)
		for _, c := range categories {
			table.Rows = append(table.Rows, []string{c, Amount(s.CategorySpending[c], currency)})
		}
		doc.Table(table)
	}

	if len(s.Budgets) > 0 {
		doc.H2("Budgets")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Limit", "Spent", "Remaining"},
		}
		for _, b := range s.Budgets {
			table.Rows = append(table.Rows, []string{
				b.Category,
				Amount(b.Limit, currency),
				Amount(b.Spent, currency),
				SignedAmount(b.Remaining(), currency),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

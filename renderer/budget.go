package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/finbook/finbook"
)

// Budgets renders a markdown table of budgets with their limit, accumulated
// spending and remaining headroom. Remaining may be negative, there is
// nothing to enforce.
func Budgets(budgets []*finbook.Budget, currency string) string {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Limit", "Spent", "Remaining"},
	}
	for _, b := range budgets {
		table.Rows = append(table.Rows, []string{
			b.Category,
			Amount(b.Limit, currency),
			Amount(b.Spent, currency),
			SignedAmount(b.Remaining(), currency),
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Budgets")
	doc.Table(table)
	return doc.String()
}

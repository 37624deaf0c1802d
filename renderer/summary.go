package renderer

import (
	"bytes"

	"github.com/avigne/pocket"
	md "github.com/nao1215/markdown"
)

// Summary renders the three aggregate figures to a markdown string.
// The expense is shown as a positive magnitude; the balance keeps its
// natural sign.
func Summary(s pocket.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")

	table := md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Balance", s.Balance.String()},
			{"Income", s.Income.String()},
			{"Expense", s.Expense.Abs().String()},
		},
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/avigne/pocket"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx pocket.Transaction) string {
	if tx.IsIncome() {
		return fmt.Sprintf("income %q of %s (id %s)", tx.Description, tx.Amount.String(), tx.ID)
	}
	return fmt.Sprintf("expense %q of %s (id %s)", tx.Description, tx.Amount.Abs().String(), tx.ID)
}

// Transactions renders the transaction list to a markdown table, in the
// order given (callers pass the newest-first projection). The id column is
// the handle for deletion. An empty list renders a single placeholder line
// instead of the table.
func Transactions(txs []pocket.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(txs) == 0 {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			formatTime(tx.Time()),
			tx.Description,
			tx.Amount.SignedString(),
			tx.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Amount", "ID"},
		Rows:   rows,
	})

	return doc.String()
}

package pocket

import (
	"iter"
	"sort"

	"github.com/shopspring/decimal"
)

// Ledger is the ordered collection of all transactions.
//
// Transactions are kept in insertion order; the newest-first view used for
// display is a separately computed projection (see Newest). The ledger owns
// its collection: mutations go through Add and Remove only, and derived
// figures are recomputed on demand, never stored.
type Ledger struct {
	currency     string
	transactions []Transaction
}

// Summary holds the three derived aggregates of a ledger. Expense is kept
// with its natural negative sign; displaying it as a positive magnitude is
// the renderer's concern.
type Summary struct {
	Income  Money
	Expense Money
	Balance Money
}

// NewLedger creates an empty ledger whose amounts are displayed in the
// given currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		currency:     currency,
		transactions: make([]Transaction, 0),
	}
}

// Currency returns the display currency of the ledger.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Add appends transactions to the end of the ledger.
func (l *Ledger) Add(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Remove deletes the transaction whose id matches, if any, and reports
// whether an entry was removed. Removing an absent id is a no-op, not an
// error.
func (l *Ledger) Remove(id string) bool {
	kept := make([]Transaction, 0, len(l.transactions))
	removed := false
	for _, tx := range l.transactions {
		if !removed && tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	l.transactions = kept
	return removed
}

// Transactions returns an iterator over transactions in insertion order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Newest returns the display projection of the ledger: a copy of the
// transactions sorted by timestamp, newest first. The sort is stable, so
// entries sharing a timestamp keep their insertion order.
func (l *Ledger) Newest() []Transaction {
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp > txs[j].Timestamp
	})
	return txs
}

// Summary computes the derived aggregates: income is the sum of positive
// amounts, expense the sum of negative amounts (kept negative), and
// balance their total.
func (l *Ledger) Summary() Summary {
	income := M(decimal.Zero, l.currency)
	expense := M(decimal.Zero, l.currency)
	for _, tx := range l.transactions {
		if tx.Amount.IsPositive() {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Add(expense),
	}
}

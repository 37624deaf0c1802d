package pocket

import (
	"slices"
	"testing"
)

func tx(id, description string, amount float64, timestamp int64) Transaction {
	return Transaction{
		ID:          id,
		Description: description,
		Amount:      M(amount, "USD"),
		Timestamp:   timestamp,
	}
}

func TestLedger_Summary(t *testing.T) {
	ledger := NewLedger("USD")
	ledger.Add(
		tx("a", "Salary", 100, 1000),
		tx("b", "Groceries", -40, 2000),
	)

	s := ledger.Summary()
	if !s.Income.Equal(M(100, "USD")) {
		t.Errorf("Income = %v, want %v", s.Income, M(100, "USD"))
	}
	if !s.Expense.Equal(M(-40, "USD")) {
		t.Errorf("Expense = %v, want %v", s.Expense, M(-40, "USD"))
	}
	if !s.Balance.Equal(M(60, "USD")) {
		t.Errorf("Balance = %v, want %v", s.Balance, M(60, "USD"))
	}
}

func TestLedger_SummaryInvariants(t *testing.T) {
	testCases := []struct {
		name string
		txs  []Transaction
	}{
		{"empty ledger", nil},
		{"only income", []Transaction{tx("a", "x", 10, 1), tx("b", "y", 5, 2)}},
		{"only expense", []Transaction{tx("a", "x", -10, 1)}},
		{"mixed", []Transaction{tx("a", "x", 100, 1), tx("b", "y", -40, 2), tx("c", "z", -70, 3)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger("USD")
			ledger.Add(tc.txs...)

			s := ledger.Summary()
			if !s.Balance.Equal(s.Income.Add(s.Expense)) {
				t.Errorf("balance %v != income %v + expense %v", s.Balance, s.Income, s.Expense)
			}
			if s.Income.IsNegative() {
				t.Errorf("income %v must never be negative", s.Income)
			}
			if s.Expense.IsPositive() {
				t.Errorf("expense %v must never be positive", s.Expense)
			}
		})
	}
}

func TestLedger_Remove(t *testing.T) {
	ledger := NewLedger("USD")
	ledger.Add(tx("a", "Salary", 100, 1000), tx("b", "Groceries", -40, 2000))

	if !ledger.Remove("a") {
		t.Fatal("Remove(\"a\") should report a removal")
	}
	if ledger.Len() != 1 {
		t.Fatalf("Len() = %d after removal, want 1", ledger.Len())
	}
	remaining := slices.Collect(ledger.Transactions())
	if remaining[0].ID != "b" {
		t.Errorf("remaining transaction is %q, want %q", remaining[0].ID, "b")
	}
}

// Deleting an id that is not in the ledger leaves it unchanged.
func TestLedger_RemoveAbsent(t *testing.T) {
	ledger := NewLedger("USD")
	ledger.Add(tx("a", "Salary", 100, 1000))

	if ledger.Remove("nope") {
		t.Error("Remove() of an absent id should report no removal")
	}
	if ledger.Len() != 1 {
		t.Errorf("Len() = %d, want 1: the ledger must be unchanged", ledger.Len())
	}
}

func TestLedger_Newest(t *testing.T) {
	ledger := NewLedger("USD")
	ledger.Add(
		tx("a", "oldest", 1, 1000),
		tx("b", "newest", 2, 3000),
		tx("c", "middle", 3, 2000),
	)

	got := ledger.Newest()
	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("Newest()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}

	// The projection must not disturb the insertion order of the ledger.
	insertion := slices.Collect(ledger.Transactions())
	if insertion[0].ID != "a" {
		t.Errorf("insertion order changed: first is %q, want %q", insertion[0].ID, "a")
	}
}

// Entries sharing a timestamp keep their insertion order (stable sort).
func TestLedger_NewestStable(t *testing.T) {
	ledger := NewLedger("USD")
	ledger.Add(
		tx("a", "first", 1, 1000),
		tx("b", "second", 2, 1000),
	)

	got := ledger.Newest()
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("Newest() = [%s %s], want stable order [a b]", got[0].ID, got[1].ID)
	}
}

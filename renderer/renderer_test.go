package renderer

import (
	"strings"
	"testing"

	"github.com/avigne/pocket"
)

func tx(id, description string, amount float64, timestamp int64) pocket.Transaction {
	return pocket.Transaction{
		ID:          id,
		Description: description,
		Amount:      pocket.M(amount, "USD"),
		Timestamp:   timestamp,
	}
}

func TestSummary(t *testing.T) {
	ledger := pocket.NewLedger("USD")
	ledger.Add(tx("a", "Salary", 100, 1000), tx("b", "Groceries", -40, 2000))

	got := Summary(ledger.Summary())

	for _, want := range []string{"Balance", "$60.00", "Income", "$100.00", "Expense", "$40.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() output misses %q:\n%s", want, got)
		}
	}
	// The expense magnitude is shown positive.
	if strings.Contains(got, "-$40.00") {
		t.Errorf("Summary() shows a signed expense:\n%s", got)
	}
}

func TestSummary_EmptyLedger(t *testing.T) {
	got := Summary(pocket.NewLedger("USD").Summary())
	for _, want := range []string{"Balance", "Income", "Expense"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() output misses %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "$0.00"); n != 3 {
		t.Errorf("Summary() renders $0.00 %d times, want 3 (balance, income and expense):\n%s", n, got)
	}
}

func TestTransactions(t *testing.T) {
	ledger := pocket.NewLedger("USD")
	ledger.Add(
		tx("a", "Salary", 50000, 1000),
		tx("b", "Groceries", -120.40, 2000),
	)

	got := Transactions(ledger.Newest())

	for _, want := range []string{"Salary", "+$50,000.00", "Groceries", "-$120.40", "a", "b"} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions() output misses %q:\n%s", want, got)
		}
	}

	// Newest first: the entry with the larger timestamp renders before
	// the older one.
	if strings.Index(got, "Groceries") > strings.Index(got, "Salary") {
		t.Errorf("Transactions() is not newest first:\n%s", got)
	}
}

func TestTransactions_Empty(t *testing.T) {
	got := Transactions(nil)
	if !strings.Contains(got, "No transactions recorded yet.") {
		t.Errorf("Transactions() of an empty ledger misses the placeholder:\n%s", got)
	}
	if strings.Contains(got, "| Date") {
		t.Errorf("Transactions() of an empty ledger should not render a table:\n%s", got)
	}
}

func TestTransaction(t *testing.T) {
	if got := Transaction(tx("a", "Salary", 100, 1)); !strings.Contains(got, "income") || !strings.Contains(got, "$100.00") {
		t.Errorf("Transaction() = %q", got)
	}
	if got := Transaction(tx("b", "Groceries", -40, 2)); !strings.Contains(got, "expense") || !strings.Contains(got, "$40.00") {
		t.Errorf("Transaction() = %q", got)
	}
}

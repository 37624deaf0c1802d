package pocket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors returned by NewTransaction.
var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount is not a valid number")
	ErrZeroAmount       = errors.New("amount cannot be zero")
)

// Transaction is one signed monetary entry in the ledger: income if the
// amount is positive, expense if it is negative. A transaction is never
// modified after creation; it can only be removed.
type Transaction struct {
	ID          string
	Description string
	Amount      Money
	Timestamp   int64 // creation instant, epoch milliseconds
}

// Time returns the creation instant of the transaction.
func (t Transaction) Time() time.Time { return time.UnixMilli(t.Timestamp) }

// IsIncome reports whether the transaction is an income entry.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Description == o.Description &&
		t.Amount.Equal(o.Amount) && t.Timestamp == o.Timestamp
}

// MarshalJSON writes the transaction with a canonical key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("timestamp", t.Timestamp)
	return w.MarshalJSON()
}

// lastStamp remembers the last issued creation stamp so that two
// transactions created within the same millisecond still get distinct ids.
// Single writer only, per the synchronous command model.
var lastStamp int64

func nextStamp(now time.Time) int64 {
	ms := now.UnixMilli()
	if ms <= lastStamp {
		ms = lastStamp + 1
	}
	lastStamp = ms
	return ms
}

// NewTransaction validates raw user input and builds a Transaction from it.
//
// The description must be non-empty once trimmed, and the amount must parse
// as a non-zero decimal number. On any validation failure no transaction is
// produced. The id and timestamp both derive from the creation instant.
func NewTransaction(description, rawAmount string, now time.Time, currency string) (Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Transaction{}, ErrEmptyDescription
	}
	value, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidAmount, rawAmount)
	}
	if value.IsZero() {
		return Transaction{}, ErrZeroAmount
	}

	stamp := nextStamp(now)
	return Transaction{
		ID:          strconv.FormatInt(stamp, 10),
		Description: description,
		Amount:      M(value, currency),
		Timestamp:   stamp,
	}, nil
}

package pocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrCorrupt reports that the persisted ledger could not be parsed as the
// expected structure. It is recoverable: callers fall back to an empty
// ledger and surface a notice.
var ErrCorrupt = errors.New("ledger file is corrupt")

// txRecord is the persisted shape of a transaction. The currency is not
// part of it: a ledger has a single display currency, configured outside
// the file.
type txRecord struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   int64           `json:"timestamp"`
}

// DecodeLedger reads a JSON array of transactions and returns a ledger in
// the given display currency. An empty or blank input yields an empty
// ledger. Anything that does not parse as the expected structure yields an
// empty ledger and an error wrapping ErrCorrupt.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	ledger := NewLedger(currency)

	data, err := io.ReadAll(r)
	if err != nil {
		return ledger, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ledger, nil
	}

	var records []txRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return NewLedger(currency), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	for _, rec := range records {
		ledger.Add(Transaction{
			ID:          rec.ID,
			Description: rec.Description,
			Amount:      M(rec.Amount, currency),
			Timestamp:   rec.Timestamp,
		})
	}
	return ledger, nil
}

// EncodeLedger persists the whole ledger to w as a JSON array, one
// transaction per line with a canonical key order. The whole state is
// always written; there is no partial or incremental persistence.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if ledger.Len() == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	last := ledger.Len() - 1
	for i, tx := range ledger.transactions {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %q: %w", tx.ID, err)
		}
		buf.WriteString("  ")
		buf.Write(data)
		if i < last {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")

	_, err := w.Write(buf.Bytes())
	return err
}

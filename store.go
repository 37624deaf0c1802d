package pocket

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store persists a ledger to a single file. It owns the file path and the
// serialization format; nothing else touches the file.
type Store struct {
	path     string
	currency string
}

// NewStore creates a store for the ledger file at path, decoding amounts in
// the given display currency.
func NewStore(path, currency string) *Store {
	return &Store{path: path, currency: currency}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Load reads the whole ledger from the store's file.
//
// A missing file is not an error: it yields an empty ledger. A file that
// cannot be read or parsed also yields an empty ledger, together with a
// recoverable error (wrapping ErrCorrupt for parse failures) that callers
// surface as a notice rather than a failure.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(s.currency), nil
	}
	if err != nil {
		return NewLedger(s.currency), fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f, s.currency)
	if err != nil {
		return NewLedger(s.currency), fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	log.Printf("loaded %d transactions from %q", ledger.Len(), s.path)
	return ledger, nil
}

// Save serializes the full ledger and overwrites the store's file.
func (s *Store) Save(ledger *Ledger) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", s.path, err)
	}
	log.Printf("saved %d transactions to %q", ledger.Len(), s.path)
	return nil
}

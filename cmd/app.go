// Package cmd implements the tally command-line interface.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avigne/pocket"
	"github.com/avigne/pocket/renderer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables providing the defaults of the global flags.
const (
	EnvLedgerFile = "TALLY_FILE"
	EnvCurrency   = "TALLY_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var (
	ledgerFile *string
	currency   *string
	Verbose    *bool
)

func init() {
	// A .env file in the working directory may provide the env defaults.
	_ = godotenv.Load()

	ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "ledger.json"), "Path to the ledger file (JSON)")
	currency = flag.String("currency", envOr(EnvCurrency, "EUR"), "Display currency for amounts")
	Verbose = flag.Bool("v", false, "Enable verbose logging")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")

	c.Register(&listCmd{}, "reporting")
	c.Register(&summaryCmd{}, "reporting")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "documentation")
}

// openStore returns the persistence adapter for the app ledger file.
func openStore() *pocket.Store {
	return pocket.NewStore(*ledgerFile, *currency)
}

// loadLedger loads the persisted ledger. A corrupt or unreadable file
// degrades to an empty ledger plus a warning; it is never fatal.
func loadLedger() *pocket.Ledger {
	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; starting with an empty ledger\n", err)
	}
	return ledger
}

// refresh re-renders the whole state from the store: summary first, then
// the newest-first transaction list. It mirrors the full reload that
// follows every mutation.
func refresh() {
	ledger := loadLedger()
	printMarkdown(renderer.Summary(ledger.Summary()))
	printMarkdown(renderer.Transactions(ledger.Newest()))
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is still printed.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on stderr and reads the answer from r
// (stdin in production). Anything but "y" or "yes" declines.
func confirm(r io.Reader, prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

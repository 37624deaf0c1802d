package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avigne/pocket"
	"github.com/avigne/pocket/renderer"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction in the ledger" }
func (*addCmd) Usage() string {
	return `tally add <description> <amount>

  Records a new transaction. A positive amount is income, a negative
  amount is an expense. The amount must be a non-zero decimal number and
  the description must not be empty.

Usage Examples:
$ tally add "Salary" 50000
$ tally add "Groceries" -120.40
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: add expects a description and an amount.")
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()

	tx, err := pocket.NewTransaction(f.Arg(0), f.Arg(1), time.Now(), *currency)
	if err != nil {
		// Validation failures never mutate state.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger.Add(tx)
	if err := openStore().Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	refresh()
	fmt.Fprintf(os.Stderr, "Added %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

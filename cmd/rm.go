package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
	in  io.Reader // confirmation answers, os.Stdin when nil
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction from the ledger" }
func (*rmCmd) Usage() string {
	return `tally rm [-y] <id>

  Deletes the transaction with the given id. Asks for confirmation first
  unless -y is passed. Deleting an id that is not in the ledger changes
  nothing and is not an error.

Usage Examples:
$ tally rm 1756454400000
$ tally rm -y 1756454400000
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm expects exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	if !c.yes && !confirm(in, fmt.Sprintf("Delete transaction %s?", id)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	ledger := loadLedger()
	removed := ledger.Remove(id)
	if removed {
		if err := openStore().Save(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	refresh()
	if removed {
		fmt.Fprintf(os.Stderr, "Deleted transaction %s\n", id)
	} else {
		fmt.Fprintf(os.Stderr, "No transaction %s in the ledger, nothing deleted\n", id)
	}
	return subcommands.ExitSuccess
}

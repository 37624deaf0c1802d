package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tally fmt

  Reads the ledger file and writes it back in canonical form: one
  transaction per line, fixed key order. Unlike the other commands, fmt
  refuses to run on a corrupt file rather than degrade to an empty
  ledger, so that formatting can never lose data.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot format %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}

	if err := store.Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q: %d transactions\n", store.Path(), ledger.Len())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avigne/pocket/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all transactions in the ledger, newest first" }
func (*listCmd) Usage() string {
	return `tally list [-head <n>] [-tail <n>]

  Lists transactions from the ledger, newest first, with options for
  limiting the output.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	transactions := ledger.Newest()

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}

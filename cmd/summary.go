package cmd

import (
	"context"
	"flag"

	"github.com/avigne/pocket/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balance, income and expense totals" }
func (*summaryCmd) Usage() string {
	return `tally summary

  Displays the derived aggregates of the ledger: net balance, total
  income, and total expense.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	printMarkdown(renderer.Summary(ledger.Summary()))
	return subcommands.ExitSuccess
}

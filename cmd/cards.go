package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
	"github.com/grana-app/grana/renderer"
)

// cardsCmd holds the flags for the 'cards' subcommand.
type cardsCmd struct {
	rangeFlags
}

func (*cardsCmd) Name() string     { return "cards" }
func (*cardsCmd) Synopsis() string { return "display credit card debt and statement stats" }
func (*cardsCmd) Usage() string {
	return `gra cards [-p <period> | -s <start_date>] [-d <end_date>]

  Displays each card's lifetime pending debt, remaining limit, and the
  statement stats for the displayed period. The date range scopes the
  statement only; pending debt is always lifetime.
`
}

func (c *cardsCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dateRange, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CardsMarkdown(grana.CardReports(ledger, dateRange), dateRange))
	return subcommands.ExitSuccess
}

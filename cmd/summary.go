package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
	"github.com/grana-app/grana/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	rangeFlags
	payers string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the income/expense totals of a period" }
func (*summaryCmd) Usage() string {
	return `gra summary [-p <period> | -s <start_date>] [-d <end_date>] [-payers <selectors>]

  Displays the balance, income and expense totals for a period, under the
  given payer lens.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
	f.StringVar(&c.payers, "payers", "", "Payer selectors, comma separated.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	sel := grana.ParsePayerSelection(strings.Split(c.payers, ",")...)
	subset := grana.Select(ledger.AllTransactions(), grana.Filter{Range: dateRange, Payers: sel})
	printMarkdown(renderer.SummaryMarkdown(grana.Summarize(subset, sel), dateRange))

	return subcommands.ExitSuccess
}

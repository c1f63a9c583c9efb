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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	rangeFlags
	category string
	status   string
	payers   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a full period report of the ledger" }
func (*reportCmd) Usage() string {
	return `gra report [-p <period> | -s <start_date>] [-d <end_date>] [-category <name>] [-status <status>] [-payers <selectors>]

  Displays the transactions of a period with their summary, the expenses
  grouped by payment source, and the payer settlements.

  -payers takes comma-separated selectors: "all", "individual", or payer
  names. Selectors union together.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
	f.StringVar(&c.category, "category", "", "Only transactions of this category.")
	f.StringVar(&c.status, "status", "all", "Only transactions with this status (all, paid, pending).")
	f.StringVar(&c.payers, "payers", "", "Payer selectors, comma separated.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dateRange, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	status, err := grana.ParseStatusFilter(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := grana.Filter{
		Range:    dateRange,
		Category: c.category,
		Status:   status,
		Payers:   grana.ParsePayerSelection(strings.Split(c.payers, ",")...),
	}
	printMarkdown(renderer.ReportMarkdown(grana.NewReport(ledger, filter)))

	return subcommands.ExitSuccess
}

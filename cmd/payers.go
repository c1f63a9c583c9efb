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

// payersCmd holds the flags for the 'payers' subcommand.
type payersCmd struct {
	rangeFlags
	add    string
	remove string
}

func (*payersCmd) Name() string     { return "payers" }
func (*payersCmd) Synopsis() string { return "display payer settlements, or manage the payer registry" }
func (*payersCmd) Usage() string {
	return `gra payers [-p <period> | -s <start_date>] [-d <end_date>] [-add <name>] [-rm <name>]

  Without -add/-rm, displays what each registered payer owes over the
  period: total to receive, already paid, and still pending. Every
  registered payer appears, even with no transactions.
`
}

func (c *payersCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f)
	f.StringVar(&c.add, "add", "", "Register a new payer name.")
	f.StringVar(&c.remove, "rm", "", "Remove a payer name from the registry.")
}

func (c *payersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.add != "" || c.remove != "" {
		return c.editRegistry()
	}

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

	settlements := grana.PayerSettlement(ledger.Categories(), ledger.AllTransactions(), dateRange)
	printMarkdown(renderer.SettlementsMarkdown(settlements))
	return subcommands.ExitSuccess
}

func (c *payersCmd) editRegistry() subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.add != "" {
		if err := store.UpsertCategory(grana.PayerScope, c.add, "", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering payer %q: %v\n", c.add, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Registered payer %q.\n", c.add)
	}
	if c.remove != "" {
		if err := store.DeleteCategory(grana.PayerScope, c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing payer %q: %v\n", c.remove, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed payer %q.\n", c.remove)
	}
	return subcommands.ExitSuccess
}

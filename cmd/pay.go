package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	date string
	undo bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark a transaction as paid (or pending again)" }
func (*payCmd) Usage() string {
	return `gra pay [-d <date>] [-undo] <transaction-id>...

  Marks transactions as paid, stamping the payment date (defaults to
  today). With -undo, reverts them to pending and clears the payment date.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Payment date (defaults to today).")
	f.BoolVar(&c.undo, "undo", false, "Revert to pending instead.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}

	var when grana.Date
	if c.date != "" {
		var err error
		when, err = grana.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		if err := store.SetPaidStatus(id, !c.undo, when); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
		if c.undo {
			fmt.Printf("Transaction %s is pending again.\n", id)
		} else {
			fmt.Printf("Transaction %s paid.\n", id)
		}
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy backup document into a fresh ledger" }
func (*importCmd) Usage() string {
	return `gra import [-f] <backup.json>

  Reads a legacy backup export (one JSON document holding transactions,
  cards, accounts and categories) and writes it as a ledger file. The
  backup is validated wholesale: a single invalid record aborts the
  import. Refuses to overwrite an existing ledger unless -f is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite an existing ledger file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one backup file is required.")
		return subcommands.ExitUsageError
	}

	if !c.force {
		if _, err := os.Stat(*ledgerFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: ledger file %q already exists, use -f to overwrite.\n", *ledgerFile)
			return subcommands.ExitFailure
		}
	}

	backup, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer backup.Close()

	ledger, err := grana.ImportBackup(backup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing backup: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := grana.SaveLedger(*ledgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into %q.\n", len(ledger.AllTransactions()), *ledgerFile)
	return subcommands.ExitSuccess
}

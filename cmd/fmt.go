package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `gra fmt [-o <output_file>]

  Reads the ledger, sorts transactions chronologically, and writes it back
  in the canonical JSONL form: cards, accounts, categories, then
  transactions, with stable key order. Use -o to write elsewhere, or "-"
  for stdout.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to formatting in place; \"-\" writes to stdout.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "-" {
		if err := grana.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	target := c.outputFile
	if target == "" {
		target = *ledgerFile
	}
	if err := grana.SaveLedger(target, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", target, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted ledger written to %q.\n", target)
	return subcommands.ExitSuccess
}

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

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the derived balances of every account" }
func (*accountsCmd) Usage() string {
	return `gra accounts

  Displays the liquid balance, invested pool, total patrimony and linked
  card debt of every account. Balances fold the whole ledger; there is no
  date scoping.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(grana.AccountReports(ledger)))
	return subcommands.ExitSuccess
}

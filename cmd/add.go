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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	description string
	amount      float64
	txType      string
	category    string
	date        string
	card        string
	account     string
	paid        bool
	reserve     bool

	partner     string
	userPart    float64
	partnerPart float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction in the ledger" }
func (*addCmd) Usage() string {
	return `gra add -desc <description> -amount <value> [-type <income|expense>] [-category <name>] [-d <date>] [-card <id>] [-account <id>] [-paid] [-reserve] [-partner <name> -user-part <value> -partner-part <value>]

  Records a transaction. With -partner, the transaction is split: user and
  partner parts must sum to the amount.

Usage Examples:
# An expense paid today from the wallet.
$ gra add -desc "mercado" -amount 230.50 -category Mercado -paid

# A split dinner on a card.
$ gra add -desc "jantar" -amount 90 -card visa -partner Ana -user-part 60 -partner-part 30
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Transaction description.")
	f.Float64Var(&c.amount, "amount", 0, "Transaction amount, in the ledger currency.")
	f.StringVar(&c.txType, "type", "expense", "Transaction type (income, expense).")
	f.StringVar(&c.category, "category", "Outros", "Transaction category.")
	f.StringVar(&c.date, "d", grana.Today().String(), "Due or scheduled date.")
	f.StringVar(&c.card, "card", "", "Card id the expense was charged to.")
	f.StringVar(&c.account, "account", "", "Account id the money moved through.")
	f.BoolVar(&c.paid, "paid", false, "Mark the transaction as already paid, today.")
	f.BoolVar(&c.reserve, "reserve", false, "Expense funded from the invested pool.")
	f.StringVar(&c.partner, "partner", "", "Split partner name.")
	f.Float64Var(&c.userPart, "user-part", 0, "Your share of a split transaction.")
	f.Float64Var(&c.partnerPart, "partner-part", 0, "The partner's share of a split transaction.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := grana.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	txType, err := grana.ParseTransactionType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := grana.Transaction{
		Description:         c.description,
		Amount:              grana.BRL(c.amount),
		Type:                txType,
		Category:            c.category,
		Date:                on,
		CardID:              c.card,
		AccountID:           c.account,
		IsReserveWithdrawal: c.reserve,
	}
	if c.paid {
		tx.IsPaid = true
		tx.PaymentDate = grana.Today()
	}
	if c.partner != "" {
		tx.Split = &grana.SplitDetails{
			UserPart:    grana.BRL(c.userPart),
			PartnerPart: grana.BRL(c.partnerPart),
			PartnerName: c.partner,
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created, err := store.CreateTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s: %s\n", created.ID, renderer.Transaction(created))
	return subcommands.ExitSuccess
}

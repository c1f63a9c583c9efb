package renderer

import (
	"bytes"

	"github.com/grana-app/grana"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the derived balances of every account.
func AccountsMarkdown(reports []grana.AccountReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(reports) == 0 {
		doc.PlainText("No accounts registered.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Account", "Liquid", "Invested", "Patrimony", "Card Debt"},
	}
	var totalPatrimony grana.Money
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.Account.Name,
			r.Metrics.CurrentLiquid.String(),
			r.Metrics.CurrentInvested.String(),
			r.Metrics.TotalPatrimony.String(),
			r.Metrics.CreditCardDebt.String(),
		})
		totalPatrimony = totalPatrimony.Add(r.Metrics.TotalPatrimony)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", md.Bold(totalPatrimony.String()), "",
	})
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/grana-app/grana"
	md "github.com/nao1215/markdown"
)

// CardsMarkdown renders the card debt view: the lifetime pending debt and
// remaining limit of each card, plus the statement stats for the displayed
// range.
func CardsMarkdown(reports []grana.CardReport, displayRange grana.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Credit Cards")
	if len(reports) == 0 {
		doc.PlainText("No cards registered.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Card", "Pending Debt", "Available", "Used"},
	}
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.Card.Name,
			r.Metrics.TotalDebt.String(),
			r.Metrics.AvailableLimit.String(),
			fmt.Sprintf("%.0f%%", r.Metrics.PercentUsed),
		})
	}
	doc.Table(table)

	doc.H2(fmt.Sprintf("Statement %s", displayRange.Identifier()))
	for _, r := range reports {
		if r.Metrics.Period.Total.IsZero() {
			continue
		}
		statement := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{md.Bold(r.Card.Name), md.Bold(r.Metrics.Period.Total.String())},
			Rows: [][]string{
				{"Your part", r.Metrics.Period.UserPart.String()},
			},
		}
		for _, partner := range sortedKeys(r.Metrics.Period.Others) {
			statement.Rows = append(statement.Rows, []string{partner, r.Metrics.Period.Others[partner].String()})
		}
		doc.Table(statement)
	}

	return doc.String()
}

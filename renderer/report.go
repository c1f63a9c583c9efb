package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/grana-app/grana"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a period report: summary, payment sources,
// settlements, then the transactions themselves, most recent first.
func ReportMarkdown(r *grana.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Report"
	if !r.Filter.Range.IsZero() {
		title = fmt.Sprintf("Report %s", r.Filter.Range.Identifier())
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Summary", ""},
		Rows: [][]string{
			{"Income", r.Summary.Income.String()},
			{"Expenses", r.Summary.Expenses.String()},
			{md.Bold("Balance"), md.Bold(r.Summary.Balance.SignedString())},
		},
	})

	if len(r.Cards) > 0 {
		doc.H2("By Payment Source")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
			Header:    []string{"Source", "Total", "Your Part", "Status"},
		}
		for _, g := range r.Cards {
			status := "settled"
			if g.HasPending {
				status = "pending"
			}
			table.Rows = append(table.Rows, []string{g.Label, g.Total.String(), g.UserPart.String(), status})
			for _, partner := range sortedKeys(g.Others) {
				table.Rows = append(table.Rows, []string{"· " + partner, g.Others[partner].String(), "", ""})
			}
		}
		doc.Table(table)
	}

	if block := settlementsTable(r.Settlements); block != nil {
		doc.H2("Settlements")
		doc.Table(*block)
	}

	if len(r.Transactions) > 0 {
		doc.H2("Transactions")
		var lines []string
		for _, tx := range r.Transactions {
			lines = append(lines, Transaction(tx))
		}
		doc.OrderedList(lines...)
	}

	return doc.String()
}

// SettlementsMarkdown renders the payer settlement view on its own.
func SettlementsMarkdown(settlements []grana.Settlement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Settlements")
	if block := settlementsTable(settlements); block != nil {
		doc.Table(*block)
	} else {
		doc.PlainText("No payers registered.")
	}
	return doc.String()
}

func settlementsTable(settlements []grana.Settlement) *md.TableSet {
	if len(settlements) == 0 {
		return nil
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Payer", "To Receive", "Paid", "Pending"},
	}
	for _, s := range settlements {
		table.Rows = append(table.Rows, []string{
			s.Payer,
			s.TotalToReceive.String(),
			s.Paid.String(),
			s.Pending.String(),
		})
	}
	return &table
}

func sortedKeys(m map[string]grana.Money) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

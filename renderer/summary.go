package renderer

import (
	"bytes"
	"fmt"

	"github.com/grana-app/grana"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the at-a-glance totals of a period.
func SummaryMarkdown(s grana.Summary, dateRange grana.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if dateRange.IsZero() {
		doc.H1("Summary")
	} else {
		doc.H1(fmt.Sprintf("Summary %s", dateRange.Identifier()))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Income", s.Income.String()},
			{"Expenses", s.Expenses.String()},
			{md.Bold("Balance"), md.Bold(s.Balance.SignedString())},
		},
	})

	return doc.String()
}

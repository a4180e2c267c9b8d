package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// comparisonLabel names the comparison snapshot in report headings.
func comparisonLabel(c networth.Comparison) string {
	switch c {
	case networth.MonthOverMonth:
		return "a month ago"
	case networth.YearOverYear:
		return "a year ago"
	case networth.YearToDate:
		return "the start of the year"
	default:
		return "the previous entry"
	}
}

// SummaryMarkdown renders the Summary struct to a markdown string.
func SummaryMarkdown(s *networth.Summary, c networth.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Value: %s (%s, %s vs %s)",
		amount(s.TotalValue), signedAmount(s.AbsoluteChange), signedPct(s.PercentChange), comparisonLabel(c)))
	if s.LargestHolding != "" {
		doc.PlainText(fmt.Sprintf("Largest Holding: %s. Weighted Expected Rate: %s.", s.LargestHolding, pct(s.AvgRate)))
	}

	doc.H2("Platforms")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Platform", "Amount", "Change", "Change %", "Share", "Rate"},
		Rows:   [][]string{},
	}
	for _, p := range s.Platforms {
		table.Rows = append(table.Rows, []string{
			p.Platform,
			amount(p.Amount),
			signedAmount(p.AbsoluteChange),
			signedPct(p.PercentChange),
			pct(p.Percentage),
			pct(p.Rate),
		})
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// PerformanceMarkdown renders the PerformanceReport struct to a markdown string.
func PerformanceMarkdown(p *networth.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance")

	if p.Methodology == networth.MethodInsufficient {
		doc.PlainText("Not enough history to compute returns: record at least two dated entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Return", signedPct(p.TotalReturn)},
			{"Time-Weighted Return", signedPct(p.TimeWeightedReturn)},
			{"Money-Weighted Return", signedPct(p.MoneyWeightedReturn)},
			{"CAGR", signedPct(p.CAGR)},
			{"Annualized Volatility", pct(p.Volatility)},
		},
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Methodology: %s. Confidence: %s.", p.Methodology, p.Confidence))
	switch p.Methodology {
	case networth.MethodSimple:
		doc.PlainText("Time-weighted figures are withheld: without contribution data, deposits would be counted as gains.")
	case networth.MethodHybrid:
		doc.PlainText("Only part of the history carries contribution data; treat these figures as estimates.")
	}

	return doc.String()
}

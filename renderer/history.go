package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// HistoryMarkdown renders the History struct to a markdown string.
func HistoryMarkdown(h *networth.History) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Value", "Change", "Change %", "Contributions"},
		Rows:   [][]string{},
	}
	for _, p := range h.Points {
		contributions := ""
		if p.HasContributions {
			contributions = signedAmount(p.Contributions)
		}
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			amount(p.Value),
			signedAmount(p.Change),
			signedPct(p.PercentChange),
			contributions,
		})
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// QualityMarkdown renders the QualityReport struct to a markdown string.
func QualityMarkdown(q networth.QualityReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Data Quality")
	doc.PlainText(fmt.Sprintf("Classification: %s", q.Quality))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Entries", fmt.Sprintf("%d", q.TotalEntries)},
			{"Enhanced Entries", fmt.Sprintf("%d", q.EnhancedEntries)},
			{"Snapshot-Only Entries", fmt.Sprintf("%d", q.SnapshotOnlyEntries)},
			{"Coverage", q.CoveragePeriod},
		},
	})

	switch q.Quality {
	case networth.Enhanced:
		doc.PlainText("All analytics are available for this history.")
	case networth.Mixed:
		doc.PlainText("Investment risk metrics are locked. Record contribution amounts on every update to unlock them.")
	default:
		doc.PlainText("Performance and investment risk analytics are limited. Record contribution amounts to unlock them.")
	}

	return doc.String()
}

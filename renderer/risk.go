package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// RiskMarkdown renders the RiskReport struct to a markdown string.
// When investment metrics are locked by the data quality, the section says so
// instead of showing zeros.
func RiskMarkdown(r *networth.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Risk Analysis")

	doc.H2("Diversification")
	d := r.Diversification
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Platforms", fmt.Sprintf("%d", d.PlatformCount)},
			{"Concentration (Herfindahl)", fmt.Sprintf("%.3f", d.ConcentrationRisk)},
			{"Largest Platform Weight", fmt.Sprintf("%.1f%%", d.LargestPlatformWeight*100)},
			{"Diversification Score", fmt.Sprintf("%.0f / 100", d.Score)},
		},
	})

	doc.H2("Investment Risk")
	if r.Investment == nil {
		doc.PlainText(fmt.Sprintf("Locked: requires enhanced data, this history is %s.", r.Quality.Quality))
	} else {
		ir := r.Investment
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Metric", "Value"},
			Rows: [][]string{
				{"Annualized Volatility", pct(ir.AnnualizedVolatility)},
				{"Downside Deviation", pct(ir.DownsideDeviation)},
				{"Max Drawdown", pct(ir.MaxDrawdown)},
				{"Max Drawdown Duration", fmt.Sprintf("%d days", ir.MaxDrawdownDays)},
				{"Current Drawdown", pct(ir.CurrentDrawdown)},
				{"Value at Risk (95%)", pct(ir.ValueAtRisk95)},
				{"Value at Risk (99%)", pct(ir.ValueAtRisk99)},
				{"Sharpe Ratio", fmt.Sprintf("%.2f", ir.SharpeRatio)},
				{"Sortino Ratio", fmt.Sprintf("%.2f", ir.SortinoRatio)},
			},
		})
	}

	if len(r.Limitations) > 0 {
		doc.H2("Limitations")
		doc.BulletList(r.Limitations...)
	}
	if len(r.Improvements) > 0 {
		doc.H2("Improvements")
		doc.BulletList(r.Improvements...)
	}

	return doc.String()
}

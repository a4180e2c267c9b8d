package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oxal/networth"
)

// CashFlowMarkdown renders the CashFlowReport struct to a markdown string.
func CashFlowMarkdown(r *networth.CashFlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Contributions", amount(r.TotalContributions)},
			{"Total Withdrawals", amount(r.TotalWithdrawals)},
			{"Net Contributions", amount(r.NetContributions)},
			{"Average Contribution", amount(r.AverageContribution)},
			{"Contributions per Year", fmt.Sprintf("%.1f", r.ContributionsPerYear)},
		},
	})

	doc.H2("Attribution")
	if !r.HasAnyContributionData {
		doc.PlainText("No contribution data recorded: the split between deposited cash and investment gains cannot be computed.")
	} else {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Source", "Value"},
			Rows: [][]string{
				{"From Contributions", signedAmount(r.ContributionGains)},
				{"From Investments", signedAmount(r.InvestmentGains)},
			},
		})
	}

	return doc.String()
}

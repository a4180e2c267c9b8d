package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
	"github.com/oxal/networth/renderer"
)

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct{}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display the risk profile of the portfolio" }
func (*riskCmd) Usage() string {
	return `nwt risk

  Analyzes diversification across platforms and, when the history carries
  enough contribution data, volatility, drawdowns, value-at-risk and
  Sharpe/Sortino ratios.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries("")
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RiskMarkdown(networth.NewRisk(entries)))
	return subcommands.ExitSuccess
}

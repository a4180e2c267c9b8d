package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
	"github.com/oxal/networth/renderer"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	platform string
}

func (*cashflowCmd) Name() string { return "cashflow" }
func (*cashflowCmd) Synopsis() string {
	return "split the current value between contributed cash and investment gains"
}
func (*cashflowCmd) Usage() string {
	return `nwt cashflow [-p <platform>]

  Sums contributions and withdrawals over the full history and attributes the
  current value between deposited cash and market-driven gains.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Restrict the report to one platform.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries(c.platform)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.CashFlowMarkdown(networth.NewCashFlow(entries)))
	return subcommands.ExitSuccess
}

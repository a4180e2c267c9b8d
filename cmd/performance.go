package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
	"github.com/oxal/networth/renderer"
)

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	platform string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display return metrics for the full history" }
func (*performanceCmd) Usage() string {
	return `nwt performance [-p <platform>]

  Computes time-weighted and money-weighted returns, CAGR, total return and
  volatility over the full history. The methodology adapts to how much
  contribution data the history carries; see 'nwt topic quality'.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Restrict the report to one platform.")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries(c.platform)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.PerformanceMarkdown(networth.NewPerformance(entries)))
	return subcommands.ExitSuccess
}

// loadEntries loads the ledger entries, optionally restricted to a platform.
// Shared by the full-history report commands.
func loadEntries(platform string) ([]networth.Entry, subcommands.ExitStatus) {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	if platform == "" {
		return ledger.Entries(), subcommands.ExitSuccess
	}
	entries := ledger.Filter(networth.ByPlatform(platform))
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No entries for platform %q.\n", platform)
		return nil, subcommands.ExitFailure
	}
	return entries, subcommands.ExitSuccess
}

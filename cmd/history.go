package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
	"github.com/oxal/networth/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	platform string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the dated total-value series" }
func (*historyCmd) Usage() string {
	return `nwt history [-p <platform>]

  Displays the total value for every recorded date, with period-over-period
  changes and the contributions recorded along the way.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Restrict the history to one platform.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries(c.platform)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.HistoryMarkdown(networth.NewHistory(entries)))
	return subcommands.ExitSuccess
}

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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date       string
	comparison string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a net-worth summary for a date" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-d <date>] [-p prev|mom|yoy|ytd]

  Displays the total value and per-platform breakdown for a date, compared
  against the previous entry, a month ago, a year ago, or the start of the
  year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the summary. Defaults to the newest entry date.")
	f.StringVar(&c.comparison, "p", "prev", "Comparison snapshot: prev, mom, yoy or ytd.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	comparison, ok := networth.ParseComparison(c.comparison)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown comparison %q, want prev, mom, yoy or ytd\n", c.comparison)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintln(os.Stderr, "The ledger is empty. Record a first entry with 'nwt add'.")
		return subcommands.ExitFailure
	}

	on := ledger.NewestEntryDate()
	if c.date != "" {
		if on, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	byDate := networth.GroupByDate(ledger.Entries())
	dates := networth.SortedDatesDesc(byDate)
	current := ledger.On(on)
	previous := networth.HistoricalSnapshot(on, comparison, dates, byDate)

	s := networth.NewSummary(current, previous)
	printMarkdown(renderer.SummaryMarkdown(s, comparison))
	return subcommands.ExitSuccess
}

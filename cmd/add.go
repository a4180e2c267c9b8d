package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date         string
	platform     string
	amount       float64
	rate         float64
	contribution string
	quality      string
	notes        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a balance entry for a platform" }
func (*addCmd) Usage() string {
	return `nwt add -p <platform> -a <amount> [-d <date>] [-r <rate>] [-c <contribution>] [-n <notes>]

  Records the balance of one platform on one date. Pass -c with the cash
  deposited (negative for a withdrawal) since the previous entry to enable
  the contribution-aware analytics.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", networth.Today().String(), "Date of the entry. See 'nwt topic dates' for supported formats.")
	f.StringVar(&c.platform, "p", "", "Platform (account, broker, wallet) the balance belongs to.")
	f.Float64Var(&c.amount, "a", 0, "Balance of the platform on that date.")
	f.Float64Var(&c.rate, "r", 0, "Expected annual return rate of the platform, in percent.")
	f.StringVar(&c.contribution, "c", "", "Cash contributed since the previous entry (negative for a withdrawal).")
	f.StringVar(&c.quality, "quality", "", "Optional data quality hint (enhanced, snapshot_only).")
	f.StringVar(&c.notes, "n", "", "Free-form notes for the entry.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.platform == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <platform> is required")
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var entry networth.Entry
	if c.contribution != "" {
		contribution, err := strconv.ParseFloat(c.contribution, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing contribution %q: %v\n", c.contribution, err)
			return subcommands.ExitUsageError
		}
		entry = networth.NewContribution(on, c.platform, c.amount, c.rate, contribution)
	} else {
		entry = networth.NewEntry(on, c.platform, c.amount, c.rate)
	}

	if c.quality != "" {
		hint, err := networth.ParseQualityHint(c.quality)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		entry = entry.WithHint(hint)
	}
	if c.notes != "" {
		entry = entry.WithNotes(c.notes)
	}

	return AppendEntries(entry)
}

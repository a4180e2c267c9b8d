package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// tagCmd holds the flags for the 'tag' subcommand.
type tagCmd struct {
	clear bool
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "assign a display tag to a platform" }
func (*tagCmd) Usage() string {
	return `nwt tag <platform> <tag>
nwt tag -clear <platform>

  Assigns a display tag to a platform (e.g. "retirement", "cash"). Tags group
  platforms in rendered reports and have no effect on any calculation.
`
}

func (c *tagCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Remove the tag from the platform.")
}

func (c *tagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if (c.clear && len(args) != 1) || (!c.clear && len(args) != 2) {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	platform := args[0]
	if c.clear {
		ledger.SetTag(platform, "")
	} else {
		ledger.SetTag(platform, args[1])
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

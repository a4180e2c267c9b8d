package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	platform string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `nwt export [-p <platform>] > entries.csv

  Writes the ledger entries to stdout in the CSV interchange format,
  chronological order, ready for a spreadsheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Restrict the export to one platform.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries(c.platform)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := networth.ExportCSV(os.Stdout, entries); err != nil {
		fmt.Fprintln(os.Stderr, "Error exporting:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

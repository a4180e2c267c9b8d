package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	format string

	// jsonpath mapping, for -format json
	records      string
	date         string
	platform     string
	amount       string
	rate         string
	contribution string
	notes        string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import entries from a CSV or JSON export" }
func (*importCmd) Usage() string {
	return `nwt import [-format csv|json] [mapping flags] < export.csv

  Reads entries from stdin and appends them to the ledger.

  The csv format expects a header row: Date,Platform,Amount,Rate with optional
  TransactionType, ContributionAmount and Notes columns; see 'nwt topic csv'.

  The json format is the escape hatch for arbitrary exports: point the
  -records flag at the list of records and the field flags at each value,
  using jsonpath expressions.

Usage Examples:
# Import a spreadsheet export.
$ nwt import < balances.csv

# Import a banking app JSON export.
$ nwt import -format json -records '$.accounts[*]' -date '$.at' -platform '$.name' -amount '$.balance' < export.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Input format: csv or json.")
	f.StringVar(&c.records, "records", "", "jsonpath to the list of records (json format).")
	f.StringVar(&c.date, "date", "", "jsonpath to the entry date within a record (json format).")
	f.StringVar(&c.platform, "platform", "", "jsonpath to the platform name within a record (json format).")
	f.StringVar(&c.amount, "amount", "", "jsonpath to the balance within a record (json format).")
	f.StringVar(&c.rate, "rate", "", "Optional jsonpath to the expected rate within a record (json format).")
	f.StringVar(&c.contribution, "contribution", "", "Optional jsonpath to the contribution within a record (json format).")
	f.StringVar(&c.notes, "notes", "", "Optional jsonpath to the notes within a record (json format).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var entries []networth.Entry
	var err error

	switch strings.ToLower(c.format) {
	case "csv":
		entries, err = networth.ImportCSV(os.Stdin)
	case "json":
		entries, err = networth.ImportJSON(os.Stdin, networth.JSONMapping{
			Records:      c.records,
			Date:         c.date,
			Platform:     c.platform,
			Amount:       c.amount,
			Rate:         c.rate,
			Contribution: c.contribution,
			Notes:        c.notes,
		})
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want csv or json\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error importing:", err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to import.")
		return subcommands.ExitSuccess
	}

	return AppendEntries(entries...)
}

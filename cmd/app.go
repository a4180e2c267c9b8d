// Package cmd implements the CLI application to manage a net-worth ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&tagCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&riskCmd{}, "reports")
	c.Register(&qualityCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&importCmd{}, "interchange")
	c.Register(&exportCmd{}, "interchange")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "networth.jsonl", "Path to the ledger file containing entries (JSONL format)")

// DecodeLedger decodes the ledger from the app default ledger file.
// A missing file is an empty ledger, not an error.
func DecodeLedger() (*networth.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return networth.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := networth.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// SaveLedger writes the whole ledger back to the app default ledger file in
// canonical form.
func SaveLedger(ledger *networth.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := networth.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// AppendEntries appends entries to the app default ledger file without
// rewriting it.
func AppendEntries(entries ...networth.Entry) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, e := range entries {
		if err := networth.EncodeEntry(f, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d entries to %s\n", len(entries), *ledgerFile)
	return subcommands.ExitSuccess
}

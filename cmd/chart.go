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

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	platform string
	output   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the total-value series as a PNG chart" }
func (*chartCmd) Usage() string {
	return `nwt chart [-p <platform>] [-o <file.png>]

  Renders the history as a line chart and writes it as a PNG file.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Restrict the chart to one platform.")
	f.StringVar(&c.output, "o", "networth.png", "Output PNG file.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries(c.platform)
	if status != subcommands.ExitSuccess {
		return status
	}

	png, err := renderer.HistoryChartPNG(networth.NewHistory(entries))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering chart:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}

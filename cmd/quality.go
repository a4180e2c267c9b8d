package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oxal/networth"
	"github.com/oxal/networth/renderer"
)

// qualityCmd holds the flags for the 'quality' subcommand.
type qualityCmd struct{}

func (*qualityCmd) Name() string     { return "quality" }
func (*qualityCmd) Synopsis() string { return "classify the history by its contribution data" }
func (*qualityCmd) Usage() string {
	return `nwt quality

  Classifies the history as enhanced, mixed or snapshot_only depending on how
  many entries carry contribution data, and explains what that unlocks.
`
}

func (c *qualityCmd) SetFlags(f *flag.FlagSet) {}

func (c *qualityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := loadEntries("")
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.QualityMarkdown(networth.Classify(entries)))
	return subcommands.ExitSuccess
}

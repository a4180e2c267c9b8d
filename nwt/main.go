package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oxal/networth/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the shell completion for nwt. Install it with
// COMP_INSTALL=1 nwt.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
	},
	Sub: map[string]*complete.Command{
		"add": {Flags: map[string]complete.Predictor{
			"d":       predict.Nothing,
			"p":       predict.Nothing,
			"a":       predict.Nothing,
			"r":       predict.Nothing,
			"c":       predict.Nothing,
			"quality": predict.Set{"snapshot_only", "enhanced"},
			"n":       predict.Nothing,
		}},
		"tag":     {Flags: map[string]complete.Predictor{"clear": predict.Nothing}},
		"fmt":     {},
		"summary": {Flags: map[string]complete.Predictor{"d": predict.Nothing, "p": predict.Set{"prev", "mom", "yoy", "ytd"}}},
		"performance": {Flags: map[string]complete.Predictor{
			"p": predict.Nothing,
		}},
		"cashflow": {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
		"risk":     {},
		"quality":  {},
		"history":  {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
		"chart": {Flags: map[string]complete.Predictor{
			"p": predict.Nothing,
			"o": predict.Files("*.png"),
		}},
		"import": {Flags: map[string]complete.Predictor{
			"format": predict.Set{"csv", "json"},
		}},
		"export": {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
		"topic":  {Args: predict.Set{"readme", "dates", "quality", "csv", "*"}},
		"assist": {},
	},
}

func main() {
	completion.Complete("nwt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

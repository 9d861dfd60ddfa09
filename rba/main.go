package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the completion machinery this call
	// answers and exits, otherwise it is a no-op.
	completion().Complete("rba")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	positions := map[string]complete.Predictor{
		"i":      predict.Files("*.csv"),
		"amount": predict.Something,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"strategy": {Flags: map[string]complete.Predictor{
				"i":      predict.Files("*.csv"),
				"amount": predict.Something,
				"json":   predict.Nothing,
			}},
			"copy": {
				Flags: positions,
				Args:  predict.Set{"bonds", "international", "national"},
			},
			"check":  {Flags: map[string]complete.Predictor{"i": predict.Files("*.csv")}},
			"paths":  {},
			"topic":  {Args: predict.Set{"readme", "glide-paths", "positions-file", "strategy"}},
			"assist": {Flags: positions},
		},
	}
}

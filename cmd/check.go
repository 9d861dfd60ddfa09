package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	file string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a positions file and show what it parses to" }
func (*checkCmd) Usage() string {
	return `rba check -i <positions.csv>

  Parses the brokerage positions export and displays the tracked positions,
  the ignored money-market balance, and the glide path its name selects.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "brokerage positions CSV export")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	snap, err := rebalance.ImportPositionsFile(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "you did not enter a csv file")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(snap))
	fmt.Printf("Glide path selected by the file name: %s\n", rebalance.SelectGlidePath(snap.Name()).Key)
	return subcommands.ExitSuccess
}

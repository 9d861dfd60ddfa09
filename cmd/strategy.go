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

// strategyCmd holds the flags for the 'strategy' subcommand.
type strategyCmd struct {
	file   string
	amount string
	json   bool
}

func (*strategyCmd) Name() string { return "strategy" }
func (*strategyCmd) Synopsis() string {
	return "compute the buy/sell/hold strategy for a positions file"
}
func (*strategyCmd) Usage() string {
	return `rba strategy -i <positions.csv> [-amount <value>] [-json]

  Loads the brokerage positions export, selects the glide path from the
  target-date token in the file name, and displays how much of each fund to
  buy or sell to reach the target allocation. The amount of new money to
  invest defaults to $0.00; a negative amount models a withdrawal.

Usage Examples:
# Rebalance without moving money in or out.
$ rba strategy -i Portfolio_Positions_2050.csv

# Invest $250 on top of the current balances.
$ rba strategy -i Portfolio_Positions_2050.csv -amount 250
`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "brokerage positions CSV export")
	f.StringVar(&c.amount, "amount", "", "new money to invest (blank means 0.00)")
	f.BoolVar(&c.json, "json", false, "write the strategy as JSON to stdout instead of a report")
}

func (c *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	strategy, status := computeStrategy(c.file, c.amount)
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.json {
		if err := rebalance.EncodeStrategy(os.Stdout, strategy); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.StrategyMarkdown(strategy))
	return subcommands.ExitSuccess
}

// Package cmd implements the CLI application to compute rebalancing
// strategies.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&strategyCmd{}, "strategy")
	c.Register(&copyCmd{}, "strategy")

	c.Register(&checkCmd{}, "positions")

	c.Register(&pathsCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// keep the shared helpers below free of any state.

// parseAmount interprets the user's new-money input. A blank input means
// $0.00, the way a blank entry field did in the original form.
func parseAmount(s string) (rebalance.Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rebalance.M(0, rebalance.USD), nil
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return rebalance.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return rebalance.M(value, rebalance.USD), nil
}

// computeStrategy loads the positions file, selects the glide path from its
// name and builds the strategy. Errors are reported to the user here; the
// returned status is ExitSuccess only when the strategy is usable.
func computeStrategy(file, amount string) (*rebalance.Strategy, subcommands.ExitStatus) {
	newMoney, err := parseAmount(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "You did not enter a valid amount")
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitUsageError
	}

	snap, err := rebalance.ImportPositionsFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "you did not enter a csv file")
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}

	path := rebalance.SelectGlidePath(snap.Name())
	strategy, err := rebalance.BuildStrategy(snap, newMoney, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitFailure
	}
	return strategy, subcommands.ExitSuccess
}

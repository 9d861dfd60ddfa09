package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// copyCmd holds the flags for the 'copy' subcommand.
type copyCmd struct {
	file   string
	amount string
}

func (*copyCmd) Name() string { return "copy" }
func (*copyCmd) Synopsis() string {
	return "copy the trade amount of one fund to the clipboard"
}
func (*copyCmd) Usage() string {
	return `rba copy -i <positions.csv> [-amount <value>] <bonds|international|national>

  Computes the strategy and places the digits of the selected fund's trade
  amount on the system clipboard, ready to paste into the brokerage order
  form. The fund may also be named by its symbol.

Usage Examples:
# Copy the amount to trade on the national index fund.
$ rba copy -i Portfolio_Positions_2050.csv national
`
}

func (c *copyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "brokerage positions CSV export")
	f.StringVar(&c.amount, "amount", "", "new money to invest (blank means 0.00)")
}

func (c *copyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "a fund (bonds, international, national, or a symbol) is required as argument")
		return subcommands.ExitUsageError
	}
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	strategy, status := computeStrategy(c.file, c.amount)
	if status != subcommands.ExitSuccess {
		return status
	}

	r, ok := selectRecommendation(strategy, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fund %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	digits := rebalance.AmountDigits(r.String())
	if err := clipboard.WriteAll(digits); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write to clipboard: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Copied %q to the clipboard (%s)\n", digits, r)
	return subcommands.ExitSuccess
}

// selectRecommendation resolves a fund selector, either positional (bonds,
// international, national) or a fund symbol, case-insensitively.
func selectRecommendation(s *rebalance.Strategy, fund string) (rebalance.Recommendation, bool) {
	recs := s.Recommendations()
	switch strings.ToLower(fund) {
	case "bonds", "bond":
		return recs[0], true
	case "international", "intl":
		return recs[1], true
	case "national", "natl":
		return recs[2], true
	}
	for _, r := range recs {
		if strings.EqualFold(r.Symbol, fund) {
			return r, true
		}
	}
	return rebalance.Recommendation{}, false
}

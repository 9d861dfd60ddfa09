package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance/advisor"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	file   string
	amount string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive AI session about the computed strategy"
}
func (*assistCmd) Usage() string {
	return `rba assist -i <positions.csv> [-amount <value>] [prompt]

  Computes the strategy and starts an interactive session with an AI
  assistant that has the strategy report as context. Requires Gemini
  credentials in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "brokerage positions CSV export")
	f.StringVar(&c.amount, "amount", "", "new money to invest (blank means 0.00)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}

	strategy, status := computeStrategy(c.file, c.amount)
	if status != subcommands.ExitSuccess {
		return status
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := advisor.New(os.Stdout, os.Stdin, renderer.StrategyMarkdown(strategy))

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

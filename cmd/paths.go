package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

type pathsCmd struct{}

func (*pathsCmd) Name() string     { return "paths" }
func (*pathsCmd) Synopsis() string { return "display the target-date glide-path table" }
func (*pathsCmd) Usage() string {
	return `rba paths

  Displays the fixed glide-path table, including the all-bonds default used
  when no target-date token is found in the file name.
`
}

func (*pathsCmd) SetFlags(f *flag.FlagSet) {}

func (*pathsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.GlidePathsMarkdown())
	return subcommands.ExitSuccess
}

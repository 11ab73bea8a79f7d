package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings table" }
func (*holdingsCmd) Usage() string {
	return `rft holdings

  Displays every position currently holding shares: average cost, market
  value, profit/loss, yield on cost and annual income.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _ := LoadPortfolio()
	printMarkdown(renderer.HoldingsMarkdown(p))
	return subcommands.ExitSuccess
}

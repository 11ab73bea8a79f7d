package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `rft summary

  Displays the portfolio-wide aggregation: total cost, market value,
  profit/loss, annual income, yields and value-weighted dividend growth.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _ := LoadPortfolio()
	printMarkdown(renderer.SummaryMarkdown(p))
	return subcommands.ExitSuccess
}

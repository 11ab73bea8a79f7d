package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio/renderer"
)

type sectorsCmd struct{}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "display the market value allocation by REIT sector" }
func (*sectorsCmd) Usage() string {
	return `rft sectors

  Breaks the portfolio market value down by REIT sector, largest first.
`
}

func (*sectorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _ := LoadPortfolio()
	printMarkdown(renderer.SectorsMarkdown(p))
	return subcommands.ExitSuccess
}

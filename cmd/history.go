package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio/renderer"
)

type historyCmd struct {
	ticker string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions of one or all positions" }
func (*historyCmd) Usage() string {
	return `rft history [-t <ticker>]

  Lists transactions in date order. The index column is the argument the
  delete command takes. Without -t, every position is listed.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to list, all positions by default.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _ := LoadPortfolio()

	if c.ticker != "" {
		pos := p.Position(c.ticker)
		if pos == nil {
			fmt.Fprintf(os.Stderr, "No position for %q\n", c.ticker)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.HistoryMarkdown(pos))
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	for _, pos := range p.Positions() {
		b.WriteString(renderer.HistoryMarkdown(pos))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		fmt.Println("Portfolio is empty.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
	"github.com/etnz/reitfolio/alreits"
	"github.com/etnz/reitfolio/renderer"
	"github.com/etnz/reitfolio/yahoo"
)

type refreshCmd struct {
	scores bool
	quiet  bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch market data for the portfolio" }
func (*refreshCmd) Usage() string {
	return `rft refresh [-scores] [-q] [ticker ...]

  Fetches the current price, annual dividend, yield and dividend growth for
  every position (or only the given tickers) from Yahoo Finance. With
  -scores, the alreits.com quality score is fetched too. A failed fetch
  leaves the previous values untouched.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.scores, "scores", false, "Also fetch alreits.com quality scores.")
	f.BoolVar(&c.quiet, "q", false, "Do not print the holdings after refreshing.")
}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store := LoadPortfolio()

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = p.Tickers()
	}
	if len(tickers) == 0 {
		fmt.Println("Portfolio is empty, nothing to refresh.")
		return subcommands.ExitSuccess
	}

	log := Logger()
	var scorer reitfolio.Scorer
	if c.scores {
		scorer = alreits.New(log)
	}
	refresher := reitfolio.NewRefresher(p, yahoo.New(log), scorer, log)

	report := refresher.Refresh(ctx, tickers...)
	for _, msg := range report.Errors {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	}
	fmt.Fprintf(os.Stderr, "Refreshed %d of %d tickers\n", report.Applied, len(tickers))

	if status := SavePortfolio(store, p); status != subcommands.ExitSuccess {
		return status
	}
	if !c.quiet {
		printMarkdown(renderer.HoldingsMarkdown(p))
	}
	return subcommands.ExitSuccess
}

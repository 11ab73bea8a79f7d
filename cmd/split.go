package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
)

type splitCmd struct {
	ticker    string
	newShares int
	oldShares int
	date      string
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "apply a stock split to a position" }
func (*splitCmd) Usage() string {
	return `rft split -t <ticker> -new <n> -old <n> -d <date>

  Back-adjusts the transactions dated before the split: shares are scaled by
  new/old, prices by old/new. The cost basis is unchanged. Use -new 1 -old 2
  for a 1:2 reverse split.

Usage Examples:
$ rft split -t O -new 2 -old 1 -d 2024-06-15
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol of the REIT.")
	f.IntVar(&c.newShares, "new", 0, "Shares after the split, per old shares.")
	f.IntVar(&c.oldShares, "old", 0, "Shares before the split.")
	f.StringVar(&c.date, "d", "", "Effective date of the split (YYYY-MM-DD).")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := reitfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing split date: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, store := LoadPortfolio()
	if err := p.ApplySplit(c.ticker, c.newShares, c.oldShares, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying split: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(store, p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Applied %d:%d split to %s as of %s\n", c.newShares, c.oldShares, c.ticker, on)
	return subcommands.ExitSuccess
}

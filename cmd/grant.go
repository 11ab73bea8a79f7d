package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
)

type grantCmd struct {
	ticker string
	shares float64
	date   string
}

func (*grantCmd) Name() string     { return "grant" }
func (*grantCmd) Synopsis() string { return "record shares received at no cost" }
func (*grantCmd) Usage() string {
	return `rft grant -t <ticker> -s <shares> [-d <date>]

  Records shares received without a purchase (spin-off, stock dividend).
  The lot enters the queue at price zero and dilutes the average cost.
`
}

func (c *grantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol of the REIT.")
	f.Float64Var(&c.shares, "s", 0, "Number of shares (fractional allowed).")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today.")
}

func (c *grantCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx := reitfolio.NewNoCost(reitfolio.Date{}, c.ticker, reitfolio.Q(c.shares))
	return recordTransaction(tx, c.date)
}

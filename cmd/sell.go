package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
)

type sellCmd struct {
	ticker string
	shares float64
	price  float64
	date   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of shares" }
func (*sellCmd) Usage() string {
	return `rft sell -t <ticker> -s <shares> -p <price> [-d <date>]

  Records a sell transaction. Sold shares consume the oldest lots first.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol of the REIT.")
	f.Float64Var(&c.shares, "s", 0, "Number of shares (fractional allowed).")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx := reitfolio.NewSell(reitfolio.Date{}, c.ticker,
		reitfolio.Q(c.shares), reitfolio.USD(c.price))
	return recordTransaction(tx, c.date)
}

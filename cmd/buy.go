package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
)

type buyCmd struct {
	ticker string
	shares float64
	price  float64
	date   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares" }
func (*buyCmd) Usage() string {
	return `rft buy -t <ticker> -s <shares> -p <price> [-d <date>]

  Records a buy transaction. The date defaults to today.

Usage Examples:
$ rft buy -t O -s 10 -p 55.50
$ rft buy -t SPG -s 2.5 -p 140 -d 2024-03-15
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol of the REIT.")
	f.Float64Var(&c.shares, "s", 0, "Number of shares (fractional allowed).")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx := reitfolio.NewBuy(reitfolio.Date{}, c.ticker,
		reitfolio.Q(c.shares), reitfolio.USD(c.price))
	return recordTransaction(tx, c.date)
}

// recordTransaction is shared by buy, sell and grant: resolve the date, route
// the transaction, save.
func recordTransaction(tx reitfolio.Transaction, date string) subcommands.ExitStatus {
	if date != "" {
		on, err := reitfolio.ParseDate(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = on
	}

	p, store := LoadPortfolio()
	if err := p.AddTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := SavePortfolio(store, p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s %s x %s on %s\n", tx.Type, tx.Ticker, tx.Shares, tx.Date)
	return subcommands.ExitSuccess
}

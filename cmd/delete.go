package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	ticker string
	index  int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction from a position" }
func (*deleteCmd) Usage() string {
	return `rft delete -t <ticker> -i <index>

  Deletes one transaction, identified by its index in 'rft history -t <ticker>'.
  A position whose last transaction is deleted is removed from the portfolio.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol of the REIT.")
	f.IntVar(&c.index, "i", -1, "Index of the transaction to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store := LoadPortfolio()
	if err := p.DeleteTransaction(c.ticker, c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SavePortfolio(store, p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted transaction %d of %s\n", c.index, c.ticker)
	return subcommands.ExitSuccess
}

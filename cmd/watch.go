package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"

	"github.com/etnz/reitfolio"
	"github.com/etnz/reitfolio/yahoo"
)

type watchCmd struct {
	every string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refresh market data on a schedule" }
func (*watchCmd) Usage() string {
	return `rft watch [-every <duration>]

  Refreshes market data repeatedly until interrupted (Ctrl+C). The portfolio
  file is saved after each round. Overlapping rounds are safe: stale results
  are dropped.

Usage Examples:
$ rft watch -every 15m
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.every, "every", "15m", "Refresh interval (Go duration).")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store := LoadPortfolio()
	if len(p.Tickers()) == 0 {
		fmt.Println("Portfolio is empty, nothing to watch.")
		return subcommands.ExitSuccess
	}

	log := Logger()
	refresher := reitfolio.NewRefresher(p, yahoo.New(log), nil, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	round := func() {
		report := refresher.Refresh(ctx, p.Tickers()...)
		log.Info().
			Int("applied", report.Applied).
			Int("dropped", report.Dropped).
			Int("errors", len(report.Errors)).
			Msg("refresh round done")
		if err := store.Save(p); err != nil {
			log.Error().Err(err).Msg("saving portfolio")
		}
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+c.every, round); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid interval %q: %v\n", c.every, err)
		return subcommands.ExitUsageError
	}

	round() // one immediate round before the schedule kicks in
	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()

	fmt.Fprintln(os.Stderr, "watch stopped")
	return subcommands.ExitSuccess
}

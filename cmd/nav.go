package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/reitfolio"
	"github.com/etnz/reitfolio/renderer"
)

type navCmd struct {
	set  string
	date string
}

func (*navCmd) Name() string     { return "nav" }
func (*navCmd) Synopsis() string { return "set or analyze consensus NAV values" }
func (*navCmd) Usage() string {
	return `rft nav [-set <ticker>=<nav>,...] [-d <DD/MM/YYYY>]

  Without flags, displays the premium/discount of every position against its
  consensus NAV. With -set, records new consensus values (and optionally the
  report date they were published on).

Usage Examples:
$ rft nav
$ rft nav -set O=62.5,SPG=140 -d 30/06/2024
`
}

func (c *navCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Comma-separated ticker=nav pairs to record.")
	f.StringVar(&c.date, "d", "", "Publication date of the NAV report (DD/MM/YYYY).")
}

func (c *navCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store := LoadPortfolio()

	if c.set == "" && c.date == "" {
		printMarkdown(renderer.NAVMarkdown(p))
		return subcommands.ExitSuccess
	}

	if c.set != "" {
		values, err := parseNAVPairs(c.set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.SetNAV(values)
		for ticker := range values {
			if p.Position(ticker) == nil {
				fmt.Fprintf(os.Stderr, "Warning: no position for %q, value ignored\n", ticker)
			}
		}
	}
	if c.date != "" {
		on, err := reitfolio.ParseReportDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.SetNAVReportDate(on)
	}

	return SavePortfolio(store, p)
}

// parseNAVPairs parses "O=62.5,SPG=140" into consensus values.
func parseNAVPairs(s string) (map[string]reitfolio.Money, error) {
	values := make(map[string]reitfolio.Money)
	for _, pair := range strings.Split(s, ",") {
		ticker, raw, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("invalid pair %q, want ticker=nav", pair)
		}
		nav, err := strconv.ParseFloat(raw, 64)
		if err != nil || nav <= 0 {
			return nil, fmt.Errorf("invalid NAV %q for %q", raw, ticker)
		}
		values[strings.ToUpper(strings.TrimSpace(ticker))] = reitfolio.USD(nav)
	}
	return values, nil
}

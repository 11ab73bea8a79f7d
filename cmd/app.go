// Package cmd implements the CLI application to manage a REIT portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/reitfolio"
)

// Register the subcommands. A main package calls Register() and then Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&grantCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&splitCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&sectorsCmd{}, "reports")
	c.Register(&navCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&refreshCmd{}, "market data")
	c.Register(&watchCmd{}, "market data")

	c.Register(&adviseCmd{}, "assistant")
	c.Register(&topicCmd{}, "")
}

// As a CLI application with a short lived lifecycle, global flags are fine.

var portfolioFile = flag.String("portfolio-file", "reit_portfolio.json", "Path to the portfolio JSON file")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Logger returns the application logger, writing human-readable lines to
// stderr so reports on stdout stay clean.
func Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// LoadPortfolio opens the portfolio file. A corrupt file has already been
// backed up by the store; the warning is surfaced and an empty portfolio is
// used so the command can still run.
func LoadPortfolio() (*reitfolio.Portfolio, *reitfolio.Store) {
	store := reitfolio.NewStore(*portfolioFile)
	p, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return p, store
}

// SavePortfolio persists the portfolio back to its file.
func SavePortfolio(store *reitfolio.Store, p *reitfolio.Portfolio) subcommands.ExitStatus {
	if err := store.Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio to %q: %v\n", store.Path, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (for instance when piping to a file).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

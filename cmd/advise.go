package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/reitfolio/advisor"
	"github.com/etnz/reitfolio/renderer"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get AI commentary on the portfolio" }
func (*adviseCmd) Usage() string {
	return `rft advise

  Sends the portfolio reports to the analyst model and starts an interactive
  session for follow-up questions. Requires a configured Gemini API key.
`
}

func (*adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _ := LoadPortfolio()
	if len(p.Tickers()) == 0 {
		fmt.Println("Portfolio is empty, nothing to review.")
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var report strings.Builder
	report.WriteString(renderer.SummaryMarkdown(p))
	report.WriteString("\n")
	report.WriteString(renderer.HoldingsMarkdown(p))
	report.WriteString("\n")
	report.WriteString(renderer.NAVMarkdown(p))

	a := advisor.New()
	if err := a.Run(ctx, client, os.Stdout, os.Stdin, report.String()); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/reitfolio/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	completion().Complete("rft")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	tx := map[string]complete.Predictor{
		"t": predict.Nothing,
		"s": predict.Nothing,
		"p": predict.Nothing,
		"d": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
			"v":              predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"buy":      {Flags: tx},
			"sell":     {Flags: tx},
			"grant":    {Flags: tx},
			"delete":   {Flags: map[string]complete.Predictor{"t": predict.Nothing, "i": predict.Nothing}},
			"split":    {Flags: map[string]complete.Predictor{"t": predict.Nothing, "new": predict.Nothing, "old": predict.Nothing, "d": predict.Nothing}},
			"history":  {Flags: map[string]complete.Predictor{"t": predict.Nothing}},
			"holdings": {},
			"summary":  {},
			"sectors":  {},
			"nav":      {Flags: map[string]complete.Predictor{"set": predict.Nothing, "d": predict.Nothing}},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"refresh":  {Flags: map[string]complete.Predictor{"scores": predict.Nothing, "q": predict.Nothing}},
			"watch":    {Flags: map[string]complete.Predictor{"every": predict.Nothing}},
			"advise":   {},
			"topic":    {Args: predict.Set{"readme", "accounting", "nav", "refresh", "sectors"}},
		},
	}
}

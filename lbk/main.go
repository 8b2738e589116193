package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/r1ckey7/ledgerbook/cmd"
)

func main() {
	// Load .env for local development; a missing file is fine.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and returns immediately
// otherwise. Install with: COMP_INSTALL=1 lbk
func completion() {
	ledgerFlags := map[string]complete.Predictor{
		"l": predict.Something,
	}
	spec := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir": predict.Dirs("*"),
			"users-file": predict.Files("*"),
			"user":       predict.Something,
		},
		Sub: map[string]*complete.Command{
			"create":   {},
			"ledgers":  {},
			"rename":   {},
			"delete":   {},
			"fmt":      {Flags: ledgerFlags},
			"add":      {Flags: ledgerFlags},
			"tx":       {Flags: ledgerFlags},
			"edit":     {Flags: ledgerFlags},
			"rm":       {Flags: ledgerFlags},
			"summary":  {Flags: ledgerFlags},
			"rates":    {Flags: map[string]complete.Predictor{"import": predict.Files("*.json")}},
			"login":    {},
			"register": {},
			"topic":    {},
		},
	}
	spec.Complete("lbk")
}

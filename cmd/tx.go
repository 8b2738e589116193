package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
	"github.com/r1ckey7/ledgerbook/renderer"
)

type txCmd struct {
	ledger string
	day    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the records of a ledger" }
func (*txCmd) Usage() string {
	return `lbk tx [-l <ledger>] [-d <date>]

  Lists a ledger's records with their indices. The index is the handle for
  the edit and rm commands. With -d, lists only the records of that day.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "l", ledgerbook.DefaultLedgerName, "Ledger to list.")
	f.StringVar(&p.day, "d", "", "List only the records of this date (YYYY-MM-DD).")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := loadEntries(p.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.day != "" {
		day, err := ledgerbook.ParseDate(p.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		entries = ledgerbook.OnDay(entries, day)
	}
	printMarkdown(renderer.Records(p.ledger, entries))
	return subcommands.ExitSuccess
}

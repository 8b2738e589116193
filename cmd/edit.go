package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
)

type editCmd struct {
	addCmd
	index int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a record by index" }
func (*editCmd) Usage() string {
	return `lbk edit -i <index> [-l <ledger>] [-d <date>] [-n <note>] <income|expense> <amount> <category>

  Replaces the record at the given index (see "lbk tx") and persists the
  ledger immediately.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	p.addCmd.SetFlags(f)
	f.IntVar(&p.index, "i", -1, "Index of the record to replace.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i is required; list indices with \"lbk tx\".")
		return subcommands.ExitUsageError
	}
	rec, ok := p.parseRecord(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	if err := openStore().Update(owner(), p.ledger, p.index, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not edit record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Replaced record %d of ledger %q.\n", p.index, p.ledger)
	return subcommands.ExitSuccess
}

type rmCmd struct {
	ledger string
	index  int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by index" }
func (*rmCmd) Usage() string {
	return `lbk rm -i <index> [-l <ledger>]

  Deletes the record at the given index (see "lbk tx") and persists the
  ledger immediately. Later records shift down by one.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "l", ledgerbook.DefaultLedgerName, "Ledger to delete from.")
	f.IntVar(&p.index, "i", -1, "Index of the record to delete.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i is required; list indices with \"lbk tx\".")
		return subcommands.ExitUsageError
	}
	if err := openStore().Remove(owner(), p.ledger, p.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not delete record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted record %d of ledger %q.\n", p.index, p.ledger)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	ledger string
	date   string
	note   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `lbk add [-l <ledger>] [-d <date>] [-n <note>] <income|expense> <amount> <category>

  Appends a record to a ledger and persists it immediately. The amount is
  denominated in the ledger's currency and must not be negative.

Usage Examples:
# A 40 euro restaurant bill in the "tourism" ledger.
$ lbk add -l tourism -d 2024-03-01 expense 40 food

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "l", ledgerbook.DefaultLedgerName, "Ledger to record into.")
	f.StringVar(&p.date, "d", "", "Date of the record (YYYY-MM-DD, defaults to today).")
	f.StringVar(&p.note, "n", "", "Optional free-text note.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, ok := p.parseRecord(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	if err := openStore().Append(owner(), p.ledger, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not add record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s (%s) in ledger %q.\n", rec.Direction, rec.Amount, rec.Category, p.ledger)
	return subcommands.ExitSuccess
}

// parseRecord builds a record from positional arguments and the date/note
// flags. It is shared with the edit command.
func (p *addCmd) parseRecord(f *flag.FlagSet) (ledgerbook.Record, bool) {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected a direction, an amount and a category.")
		return ledgerbook.Record{}, false
	}
	dir, err := ledgerbook.ParseDirection(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ledgerbook.Record{}, false
	}
	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(1), err)
		return ledgerbook.Record{}, false
	}

	day := ledgerbook.Today()
	if p.date != "" {
		day, err = ledgerbook.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ledgerbook.Record{}, false
		}
	}

	rec := ledgerbook.NewRecord(day, dir, f.Arg(2), amount, p.note)
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ledgerbook.Record{}, false
	}
	return rec, true
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledger string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite ledger containers in canonical form"
}
func (*fmtCmd) Usage() string {
	return `lbk fmt [-l <ledger>]

  Reads a ledger's records and writes them back with canonical field order.
  Unreadable rows are dropped by the rewrite; their count is reported. By
  default every ledger of the current owner is formatted in place.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "l", "", "Ledger to format. Formats all by default.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := []string{p.ledger}
	if p.ledger == "" {
		infos, err := openRegistry().List(owner())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not list ledgers: %v\n", err)
			return subcommands.ExitFailure
		}
		names = names[:0]
		for _, info := range infos {
			names = append(names, info.Name)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no ledgers found to format.")
		return subcommands.ExitSuccess
	}

	store := openStore()
	for _, name := range names {
		ledger, skipped, err := store.Load(owner(), name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting ledger %q: %v\n", name, err)
			continue
		}
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, "Ledger %q: dropping %d unreadable record(s).\n", name, skipped)
		}
		if err := store.Save(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", name, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatted ledger %q.\n", name)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
	"github.com/r1ckey7/ledgerbook/renderer"
)

type summaryCmd struct {
	ledger   string
	currency string
	year     int
	month    int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate income and expenses by year, month or in total" }
func (*summaryCmd) Usage() string {
	return `lbk summary [-l <ledger>] [-c <currency>] [-y <year> [-m <month>]]

  Aggregates records into income and expense totals with a per-category
  breakdown, every amount converted into the display currency. Without -y
  the whole history is aggregated; without -l, all ledgers of the current
  owner are merged.

Usage Examples:
# March 2024 of the "tourism" ledger, displayed in euros.
$ lbk summary -l tourism -c EUR -y 2024 -m 3

`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "l", "", "Ledger to aggregate. Defaults to all ledgers of the owner.")
	f.StringVar(&p.currency, "c", ledgerbook.DefaultLedgerCurrency, "Display currency of the totals.")
	f.IntVar(&p.year, "y", 0, "Restrict to a calendar year.")
	f.IntVar(&p.month, "m", 0, "Restrict to a month (1-12), requires -y.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.month != 0 && (p.month < 1 || p.month > 12 || p.year == 0) {
		fmt.Fprintln(os.Stderr, "Error: -m wants a month between 1 and 12 and a -y year.")
		return subcommands.ExitUsageError
	}

	entries, err := loadEntries(p.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	conv := ledgerbook.DefaultConverter()
	var summary *ledgerbook.Summary
	var title string
	switch {
	case p.month != 0:
		summary, err = ledgerbook.SummarizeMonth(entries, conv, p.currency, p.year, time.Month(p.month))
		title = fmt.Sprintf("%s %d", time.Month(p.month), p.year)
	case p.year != 0:
		summary, err = ledgerbook.SummarizeYear(entries, conv, p.currency, p.year)
		title = fmt.Sprintf("%d", p.year)
	default:
		summary, err = ledgerbook.SummarizeAll(entries, conv, p.currency)
		title = "All time"
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not aggregate: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(title, summary))
	return subcommands.ExitSuccess
}

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

type ratesCmd struct {
	importFile string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the exchange rate table" }
func (*ratesCmd) Usage() string {
	return `lbk rates [-import <file>]

  Shows the static exchange rate table used for display conversions. With
  -import, reads an exported rates snapshot (a JSON document with "base"
  and "rates" fields) and shows the table built from it instead.
`
}

func (p *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.importFile, "import", "", "Rates snapshot file to load instead of the built-in table.")
}

func (p *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conv := ledgerbook.DefaultConverter()
	if p.importFile != "" {
		file, err := os.Open(p.importFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open rates file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		conv, err = ledgerbook.ImportRates(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not import rates: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.Rates(conv))
	return subcommands.ExitSuccess
}

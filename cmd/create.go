package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
)

type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new ledger with a fixed currency" }
func (*createCmd) Usage() string {
	return `lbk create <name> <currency>

  Creates an empty ledger for the current owner. The currency is chosen at
  creation and can never be changed. Supported currencies: ` + strings.Join(ledgerbook.CurrencyCodes(), ", ") + `

Usage Examples:
# Create a ledger named "tourism" in euros.
$ lbk create tourism EUR

`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a ledger name and a currency code.")
		return subcommands.ExitUsageError
	}
	name, currency := f.Arg(0), f.Arg(1)

	if _, err := openRegistry().Create(owner(), name, currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created ledger %q (%s) for %s.\n", name, strings.ToUpper(currency), owner())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook/renderer"
)

type ledgersCmd struct{}

func (*ledgersCmd) Name() string     { return "ledgers" }
func (*ledgersCmd) Synopsis() string { return "list the ledgers of the current owner" }
func (*ledgersCmd) Usage() string {
	return `lbk ledgers

  Lists every ledger owned by the current user (or the guest namespace)
  with its currency.
`
}

func (c *ledgersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ledgersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	infos, err := openRegistry().List(owner())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not list ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Ledgers(owner(), infos))
	return subcommands.ExitSuccess
}

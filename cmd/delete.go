package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "permanently delete a ledger" }
func (*deleteCmd) Usage() string {
	return `lbk delete <name>

  Removes the ledger and its container file. This is irreversible: there is
  no soft delete.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a ledger name.")
		return subcommands.ExitUsageError
	}
	if err := openRegistry().Delete(owner(), f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not delete ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted ledger %q.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

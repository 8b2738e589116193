package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a ledger, keeping its currency and records" }
func (*renameCmd) Usage() string {
	return `lbk rename <old-name> <new-name>

  Re-keys a ledger under the current owner. The currency and records are
  untouched.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected the old and the new ledger name.")
		return subcommands.ExitUsageError
	}
	if err := openRegistry().Rename(owner(), f.Arg(0), f.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rename ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Renamed ledger %q to %q.\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

// Package cmd implements the CLI application to manage ledgers of income
// and expense records.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "ledgers")
	c.Register(&ledgersCmd{}, "ledgers")
	c.Register(&renameCmd{}, "ledgers")
	c.Register(&deleteCmd{}, "ledgers")
	c.Register(&fmtCmd{}, "ledgers")

	c.Register(&addCmd{}, "records")
	c.Register(&txCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&rmCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&ratesCmd{}, "reports")

	c.Register(&loginCmd{}, "account")
	c.Register(&registerCmd{}, "account")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", "data/ledgers", "Directory holding the ledger container files")
var usersFile = flag.String("users-file", "data/users/users.txt", "Path to the users credential file")
var userFlag = flag.String("user", "", "Owner of the ledgers; empty means guest mode")

// owner returns the current owner namespace, guest when no user is set.
func owner() string {
	if *userFlag == "" {
		return ledgerbook.GuestOwner
	}
	return *userFlag
}

func openStore() *ledgerbook.Store {
	return ledgerbook.NewStore(*ledgerDir)
}

func openRegistry() *ledgerbook.Registry {
	return ledgerbook.NewRegistry(openStore())
}

// loadEntries collects aggregation entries from one ledger, or from every
// ledger of the current owner when name is empty.
func loadEntries(name string) ([]ledgerbook.Entry, error) {
	store := openStore()
	if name != "" {
		l, skipped, err := store.Load(owner(), name)
		if err != nil {
			return nil, err
		}
		warnSkipped(name, skipped)
		return l.Entries(), nil
	}

	infos, err := openRegistry().List(owner())
	if err != nil {
		return nil, err
	}
	var entries []ledgerbook.Entry
	for _, info := range infos {
		l, skipped, err := store.Load(owner(), info.Name)
		if err != nil {
			return nil, err
		}
		warnSkipped(info.Name, skipped)
		entries = append(entries, l.Entries()...)
	}
	return entries, nil
}

func warnSkipped(name string, skipped int) {
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ledger %q has %d unreadable record(s), skipped.\n", name, skipped)
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

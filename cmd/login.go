package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/r1ckey7/ledgerbook"
)

type loginCmd struct {
	move bool
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and sync guest ledgers into the account" }
func (*loginCmd) Usage() string {
	return `lbk login [-move] <username> <password>

  Verifies the credentials, makes sure the account has its default ledger,
  and migrates every guest ledger into the account ("cloud sync", simulated
  by a local copy). By default guest containers are kept so guest mode
  stays usable; -move deletes them after migration.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.move, "move", false, "Delete guest ledgers after migration instead of keeping them.")
}

func (p *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a username and a password.")
		return subcommands.ExitUsageError
	}
	username, password := f.Arg(0), f.Arg(1)

	users, err := ledgerbook.LoadUsers(*usersFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !users.Verify(username, password) {
		fmt.Fprintln(os.Stderr, "Login failed: invalid username or password.")
		return subcommands.ExitFailure
	}

	return syncAccount(username, p.move)
}

// syncAccount bootstraps the account's default ledger and migrates the
// guest namespace into it. Shared by login and register.
func syncAccount(username string, move bool) subcommands.ExitStatus {
	registry := openRegistry()
	if _, err := registry.EnsureDefault(username); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not prepare default ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	policy := ledgerbook.MigrateCopy
	if move {
		policy = ledgerbook.MigrateMove
	}
	migrated, err := registry.MigrateGuestToUser(username, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not sync guest ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if migrated > 0 {
		fmt.Printf("Synced %d guest ledger(s) into account %q.\n", migrated, username)
	}
	fmt.Printf("Welcome, %s! Use -user %s on subsequent commands.\n", username, username)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	move bool
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user and sync guest ledgers" }
func (*registerCmd) Usage() string {
	return `lbk register [-move] <username> <password>

  Registers a new user in the users file, then performs the same guest
  ledger sync as login.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.move, "move", false, "Delete guest ledgers after migration instead of keeping them.")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a username and a password.")
		return subcommands.ExitUsageError
	}
	username, password := f.Arg(0), f.Arg(1)

	users, err := ledgerbook.LoadUsers(*usersFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := users.Register(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		return subcommands.ExitFailure
	}

	return syncAccount(username, p.move)
}

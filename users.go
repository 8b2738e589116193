package ledgerbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// reservedUsernames cannot be registered: they collide with the guest
// namespace, the default ledger, or conventional system accounts.
var reservedUsernames = []string{GuestOwner, DefaultLedgerName, "admin", "root", "system", "guest"}

// Users is the credential store behind login and registration: a line
// oriented file of "username:password" records, '#' starting a comment.
// Passwords are stored as-is; hashing is outside this core. The registry
// only ever reads from it.
type Users struct {
	path  string
	creds map[string]string
}

// LoadUsers reads the users file. A missing file yields an empty store, so
// a fresh installation can register its first user.
func LoadUsers(path string) (*Users, error) {
	u := &Users{path: path, creds: make(map[string]string)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open users file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		username, password, found := strings.Cut(line, ":")
		username = strings.TrimSpace(username)
		if !found || username == "" {
			continue
		}
		u.creds[username] = strings.TrimSpace(password)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading users file %q: %w", path, err)
	}
	return u, nil
}

// Exists reports whether a username is registered.
func (u *Users) Exists(username string) bool {
	_, ok := u.creds[username]
	return ok
}

// Verify checks a username/password pair against the store.
func (u *Users) Verify(username, password string) bool {
	stored, ok := u.creds[username]
	return ok && stored == password
}

// ValidateUsername checks that a username can be registered: non-empty, not
// reserved, free of characters that would break the "<owner>-<name>"
// container naming, and not already taken.
func (u *Users) ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	for _, reserved := range reservedUsernames {
		if strings.EqualFold(username, reserved) {
			return fmt.Errorf("username %q is reserved", username)
		}
	}
	if strings.ContainsAny(username, `- /\:*?"<>|`) {
		return fmt.Errorf("username %q may only contain letters, numbers, and underscores", username)
	}
	if u.Exists(username) {
		return fmt.Errorf("username %q: %w", username, ErrDuplicateName)
	}
	return nil
}

// Register validates and appends a new user to the file, then adds it to
// the in-memory store.
func (u *Users) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if err := u.ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(u.path), 0755); err != nil {
		return fmt.Errorf("could not create users directory: %w", err)
	}
	f, err := os.OpenFile(u.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("could not open users file %q: %w", u.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s:%s\n", username, password); err != nil {
		return fmt.Errorf("could not write users file %q: %w", u.path, err)
	}
	u.creds[username] = password
	return nil
}

package ledgerbook

import (
	"fmt"
	"strings"
)

// DefaultLedgerName is the ledger created for every new owner.
const DefaultLedgerName = "default"

// DefaultLedgerCurrency is the currency of auto-created default ledgers.
const DefaultLedgerCurrency = "AUD"

// LedgerInfo identifies one ledger in a listing.
type LedgerInfo struct {
	Name     string
	Currency string
}

// MigrationPolicy selects what happens to guest containers after their
// records have been merged into a user account.
type MigrationPolicy int

const (
	// MigrateCopy keeps the guest containers, so guest mode stays usable
	// for future anonymous sessions. This is the default.
	MigrateCopy MigrationPolicy = iota
	// MigrateMove deletes the guest containers after migration.
	MigrateMove
)

// Registry owns the mapping from an owner to its set of ledger names and
// currencies. The set is derived by scanning the store: storage is the
// registry of record, there is no second source of truth.
type Registry struct {
	store *Store
}

// NewRegistry returns a registry over the given store.
func NewRegistry(store *Store) *Registry {
	return &Registry{store: store}
}

// List returns the (name, currency) of every ledger owned by owner, sorted
// by name. An owner without ledgers gets an empty list, not an error.
func (r *Registry) List(owner string) ([]LedgerInfo, error) {
	names, err := r.store.scan(owner)
	if err != nil {
		return nil, err
	}
	infos := make([]LedgerInfo, 0, len(names))
	for _, name := range names {
		l, _, err := r.store.Load(owner, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, LedgerInfo{Name: name, Currency: l.Currency()})
	}
	return infos, nil
}

// validLedgerName rejects names that would break the container naming
// scheme or escape the store directory.
func validLedgerName(name string) error {
	if name == "" {
		return fmt.Errorf("ledger name cannot be empty")
	}
	if strings.ContainsAny(name, `/\:*?"<>|`) {
		return fmt.Errorf("ledger name %q contains a forbidden character", name)
	}
	return nil
}

// Create makes a new empty ledger with a currency that is fixed forever. It
// fails with ErrDuplicateName if the (owner, name) key already exists and
// with ErrInvalidCurrency for a code outside the supported set.
func (r *Registry) Create(owner, name, currency string) (*Ledger, error) {
	if err := validLedgerName(name); err != nil {
		return nil, err
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if r.store.Exists(owner, name) {
		return nil, fmt.Errorf("ledger %q of %q: %w", name, ownerKey(owner), ErrDuplicateName)
	}
	l := NewLedger(owner, name, strings.ToUpper(currency))
	if err := r.store.Save(l); err != nil {
		return nil, err
	}
	return l, nil
}

// EnsureDefault returns the owner's default ledger, creating it when
// missing. New sessions, guest or logged in, start from here.
func (r *Registry) EnsureDefault(owner string) (*Ledger, error) {
	if r.store.Exists(owner, DefaultLedgerName) {
		l, _, err := r.store.Load(owner, DefaultLedgerName)
		return l, err
	}
	return r.Create(owner, DefaultLedgerName, DefaultLedgerCurrency)
}

// Rename re-keys a ledger under the same owner. The currency and records
// are preserved.
func (r *Registry) Rename(owner, oldName, newName string) error {
	if err := validLedgerName(newName); err != nil {
		return err
	}
	if !r.store.Exists(owner, oldName) {
		return fmt.Errorf("ledger %q of %q: %w", oldName, ownerKey(owner), ErrNotFound)
	}
	if r.store.Exists(owner, newName) {
		return fmt.Errorf("ledger %q of %q: %w", newName, ownerKey(owner), ErrDuplicateName)
	}
	return r.store.rename(owner, oldName, newName)
}

// Delete permanently removes a ledger and its container. There is no
// soft-delete.
func (r *Registry) Delete(owner, name string) error {
	if !r.store.Exists(owner, name) {
		return fmt.Errorf("ledger %q of %q: %w", name, ownerKey(owner), ErrNotFound)
	}
	return r.store.delete(owner, name)
}

// MigrateGuestToUser merges every guest ledger into the user's account,
// invoked once when a guest session logs in or registers. A guest ledger
// whose name is free becomes a new user ledger with the same records and
// currency. On a name collision the guest records are appended after the
// user's, provided both ledgers share a currency: records are denominated
// in their ledger's currency, so merging across currencies would corrupt
// the amounts.
//
// The policy decides whether guest containers survive. It returns the
// number of ledgers migrated.
func (r *Registry) MigrateGuestToUser(username string, policy MigrationPolicy) (int, error) {
	if username == "" || username == GuestOwner {
		return 0, fmt.Errorf("cannot migrate to owner %q", username)
	}

	names, err := r.store.scan(GuestOwner)
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, name := range names {
		guest, _, err := r.store.Load(GuestOwner, name)
		if err != nil {
			return migrated, err
		}

		var target *Ledger
		if r.store.Exists(username, name) {
			target, _, err = r.store.Load(username, name)
			if err != nil {
				return migrated, err
			}
			if target.Currency() != guest.Currency() {
				return migrated, fmt.Errorf("cannot merge guest ledger %q (%s) into %s ledger: %w",
					name, guest.Currency(), target.Currency(), ErrInvalidCurrency)
			}
		} else {
			target = NewLedger(username, name, guest.Currency())
		}

		for _, rec := range guest.records {
			target.records = append(target.records, rec)
		}
		if err := r.store.Save(target); err != nil {
			return migrated, err
		}
		if policy == MigrateMove {
			if err := r.store.delete(GuestOwner, name); err != nil {
				return migrated, err
			}
		}
		migrated++
	}
	return migrated, nil
}

package ledgerbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const ledgerExt = ".jsonl"

// Store owns the on-disk representation of ledgers: one container file per
// (owner, name) key, named "<owner>-<name>.jsonl" under the store directory.
// No other component touches those files directly.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// ownerKey maps the empty owner to the guest namespace.
func ownerKey(owner string) string {
	if owner == "" {
		return GuestOwner
	}
	return owner
}

// path returns the container file for a (owner, name) key.
func (s *Store) path(owner, name string) string {
	return filepath.Join(s.dir, ownerKey(owner)+"-"+name+ledgerExt)
}

// Exists reports whether a container exists for the key.
func (s *Store) Exists(owner, name string) bool {
	_, err := os.Stat(s.path(owner, name))
	return err == nil
}

// Load reads the ledger for a (owner, name) key. It fails with ErrNotFound
// when no container exists. Corrupt record rows are skipped and counted, so
// the good rows remain readable; the count is surfaced to the caller.
func (s *Store) Load(owner, name string) (ledger *Ledger, skipped int, err error) {
	path := s.path(owner, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("ledger %q of %q: %w", name, ownerKey(owner), ErrNotFound)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, skipped, err = DecodeLedger(f)
	if err != nil {
		return nil, skipped, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	ledger.owner = ownerKey(owner)
	ledger.name = name
	return ledger, skipped, nil
}

// Save persists the full ledger, overwriting prior content. The write is
// atomic with respect to crashes: content goes to a temporary file in the
// same directory, which then replaces the container in one rename.
func (s *Store) Save(l *Ledger) error {
	if l.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create ledger directory %q: %w", s.dir, err)
	}

	path := s.path(l.Owner(), l.Name())
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode ledger %q: %w", l.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}

// Append loads the ledger, adds the record at the end, and persists
// immediately. There is no separate commit step.
func (s *Store) Append(owner, name string, r Record) error {
	l, err := s.loadForWrite(owner, name)
	if err != nil {
		return err
	}
	if err := l.Append(r); err != nil {
		return err
	}
	return s.Save(l)
}

// Update replaces the record at the given index and persists immediately.
func (s *Store) Update(owner, name string, index int, r Record) error {
	l, err := s.loadForWrite(owner, name)
	if err != nil {
		return err
	}
	if err := l.Update(index, r); err != nil {
		return err
	}
	return s.Save(l)
}

// Remove deletes the record at the given index and persists immediately.
func (s *Store) Remove(owner, name string, index int) error {
	l, err := s.loadForWrite(owner, name)
	if err != nil {
		return err
	}
	if err := l.Remove(index); err != nil {
		return err
	}
	return s.Save(l)
}

// loadForWrite loads a ledger about to be rewritten. Corrupt rows do not
// survive a rewrite: they were already dropped at decode time, so warn that
// the rewrite makes the drop permanent.
func (s *Store) loadForWrite(owner, name string) (*Ledger, error) {
	l, skipped, err := s.Load(owner, name)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("ledger %q of %q: dropping %d corrupt record(s) on rewrite", name, ownerKey(owner), skipped)
	}
	return l, nil
}

// rename re-keys a container file from one name to another under the same
// owner. The registry is the only caller.
func (s *Store) rename(owner, oldName, newName string) error {
	if err := os.Rename(s.path(owner, oldName), s.path(owner, newName)); err != nil {
		return fmt.Errorf("could not rename ledger %q to %q: %w", oldName, newName, err)
	}
	return nil
}

// delete removes a container file permanently. The registry is the only caller.
func (s *Store) delete(owner, name string) error {
	if err := os.Remove(s.path(owner, name)); err != nil {
		return fmt.Errorf("could not delete ledger %q: %w", name, err)
	}
	return nil
}

// scan returns the ledger names persisted for an owner, in lexical order.
func (s *Store) scan(owner string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil // an empty store has no ledgers, which is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan ledger directory %q: %w", s.dir, err)
	}

	prefix := ownerKey(owner) + "-"
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ledgerExt) || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(e.Name(), prefix), ledgerExt))
	}
	return names, nil
}

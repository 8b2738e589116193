package ledgerbook

import (
	"fmt"
	"iter"
)

// GuestOwner is the namespace under which anonymous sessions store their
// ledgers. It is a reserved username.
const GuestOwner = "local"

// Ledger is a named, currency-fixed, ordered collection of records owned by
// a user or by the guest namespace.
//
// Records keep their insertion order; the order carries no meaning but must
// be stable because record indices are the handle for edits and deletes.
type Ledger struct {
	owner    string
	name     string
	currency string
	records  []Record
}

// NewLedger creates an empty ledger. An empty owner means the guest namespace.
func NewLedger(owner, name, currency string) *Ledger {
	if owner == "" {
		owner = GuestOwner
	}
	return &Ledger{owner: owner, name: name, currency: currency}
}

// Owner returns the ledger's owner (a username or GuestOwner).
func (l *Ledger) Owner() string { return l.owner }

// Name returns the ledger's name, unique per owner.
func (l *Ledger) Name() string { return l.name }

// Currency returns the ledger's currency, fixed at creation.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns an iterator over the records in insertion order.
func (l *Ledger) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// At returns the record at index i.
func (l *Ledger) At(i int) (Record, error) {
	if i < 0 || i >= len(l.records) {
		return Record{}, fmt.Errorf("index %d in ledger %q/%q: %w", i, l.owner, l.name, ErrIndexOutOfRange)
	}
	return l.records[i], nil
}

// Append validates a record and adds it at the end of the ledger.
func (l *Ledger) Append(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	l.records = append(l.records, r)
	return nil
}

// Update validates a record and replaces the one at index i.
func (l *Ledger) Update(i int, r Record) error {
	if i < 0 || i >= len(l.records) {
		return fmt.Errorf("index %d in ledger %q/%q: %w", i, l.owner, l.name, ErrIndexOutOfRange)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	l.records[i] = r
	return nil
}

// Remove deletes the record at index i, shifting later records down.
func (l *Ledger) Remove(i int) error {
	if i < 0 || i >= len(l.records) {
		return fmt.Errorf("index %d in ledger %q/%q: %w", i, l.owner, l.name, ErrIndexOutOfRange)
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return nil
}

// Entries returns the ledger's records annotated with the ledger currency,
// ready for aggregation. Entries from several ledgers can be concatenated.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, 0, len(l.records))
	for _, r := range l.records {
		entries = append(entries, Entry{Record: r, Currency: l.currency})
	}
	return entries
}

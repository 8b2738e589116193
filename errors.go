package ledgerbook

import "errors"

// Sentinel errors returned by the store, registry and converter. Callers
// match them with errors.Is; the wrapped message carries the offending key.
var (
	// ErrNotFound reports a missing ledger, record or user.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName reports a create or rename collision.
	ErrDuplicateName = errors.New("name already in use")
	// ErrInvalidCurrency reports a currency outside the supported set.
	ErrInvalidCurrency = errors.New("unsupported currency")
	// ErrUnknownCurrency reports a currency code absent from a rate table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrCorruptRecord reports a container row that cannot be parsed.
	ErrCorruptRecord = errors.New("corrupt record")
	// ErrIndexOutOfRange reports an edit or delete of a nonexistent record.
	ErrIndexOutOfRange = errors.New("record index out of range")
)

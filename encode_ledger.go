package ledgerbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The container format is JSONL: the first line is an "init" command that
// declares the ledger's immutable currency, every following line is one
// record. A malformed record line must not make the rest of the ledger
// unreadable: it is skipped, logged, and counted.

// headerCmd is the decoded form of the init line.
type headerCmd struct {
	Command  CommandType `json:"command"`
	Currency string      `json:"currency"`
}

func encodeHeader(w io.Writer, currency string) error {
	var obj jsonObjectWriter
	obj.Append("command", CmdInit)
	obj.Append("currency", currency)
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// EncodeRecord marshals a single record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger persists a ledger to an io.Writer in the container format:
// the currency header first, then records in insertion order, each with a
// canonical key order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	if err := encodeHeader(w, l.Currency()); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, r := range l.records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger decodes a ledger from a stream of JSONL data. The first
// non-empty line must be the currency header; a missing or malformed header
// makes the whole container unreadable. Record lines that cannot be parsed
// are skipped and counted, so one bad row never hides the good ones.
//
// The returned ledger has no owner or name; the store sets them from the
// container's key.
func DecodeLedger(r io.Reader) (ledger *Ledger, skipped int, err error) {
	scanner := bufio.NewScanner(r)

	// Read the header first.
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var header headerCmd
		if err := json.Unmarshal(line, &header); err != nil || header.Command != CmdInit {
			return nil, 0, fmt.Errorf("invalid ledger header %q: %w", string(line), ErrCorruptRecord)
		}
		if err := ValidateCurrency(header.Currency); err != nil {
			return nil, 0, fmt.Errorf("invalid ledger header %q: %w", string(line), err)
		}
		ledger = NewLedger("", "", header.Currency)
		break
	}
	if ledger == nil {
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("error reading ledger: %w", err)
		}
		return nil, 0, fmt.Errorf("missing ledger header: %w", ErrCorruptRecord)
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			log.Printf("skipping corrupt record %q: %v", string(line), err)
			continue
		}
		ledger.records = append(ledger.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, skipped, nil
}

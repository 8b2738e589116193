package ledgerbook

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CommandType is a typed string identifying the kind of a container line.
type CommandType string

// Command types used in the ledger container format.
const (
	CmdInit    CommandType = "init" // header line carrying the ledger currency
	CmdIncome  CommandType = "income"
	CmdExpense CommandType = "expense"
)

// Direction tells whether a record is income or expense. It doubles as the
// command discriminator of the record's persisted form.
type Direction = CommandType

const (
	Income  Direction = CmdIncome
	Expense Direction = CmdExpense
)

// ParseDirection parses a direction from its string form.
func ParseDirection(s string) (Direction, error) {
	switch CommandType(s) {
	case CmdIncome:
		return Income, nil
	case CmdExpense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Record is a single dated income or expense entry in a ledger.
//
// Amount is always non negative and denominated in the owning ledger's
// currency; the sign of its contribution to totals is derived from Direction.
type Record struct {
	Date      Date
	Direction Direction
	Category  string
	Amount    decimal.Decimal
	Note      string // optional free text
}

// NewRecord builds a record. The result is not validated; call Validate
// before persisting it.
func NewRecord(day Date, dir Direction, category string, amount decimal.Decimal, note string) Record {
	return Record{Date: day, Direction: dir, Category: category, Amount: amount, Note: note}
}

// Validate checks the record for correctness.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record has no date")
	}
	if _, err := ParseDirection(string(r.Direction)); err != nil {
		return err
	}
	if r.Category == "" {
		return fmt.Errorf("record has no category")
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("record amount %s is negative", r.Amount)
	}
	return nil
}

// Equal reports whether two records have the same content.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Direction == o.Direction &&
		r.Category == o.Category &&
		r.Amount.Equal(o.Amount) &&
		r.Note == o.Note
}

// MarshalJSON implements the json.Marshaler interface for Record, with a
// canonical key order so containers diff cleanly.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", r.Direction)
	w.Append("date", r.Date)
	w.Append("category", r.Category)
	w.Append("amount", r.Amount)
	w.Optional("note", r.Note)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var temp struct {
		Command  string          `json:"command"`
		Date     Date            `json:"date"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
		Note     string          `json:"note,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	dir, err := ParseDirection(temp.Command)
	if err != nil {
		return err
	}
	*r = Record{Date: temp.Date, Direction: dir, Category: temp.Category, Amount: temp.Amount, Note: temp.Note}
	return r.Validate()
}

package renderer

import (
	"strconv"

	"github.com/r1ckey7/ledgerbook"
)

type recordsView struct {
	Ledger string
	Rows   []recordRow
}

type recordRow struct {
	Index     string
	Date      string
	Direction string
	Category  string
	Amount    string
	Note      string
}

// Records renders a record listing with indices, the handles used to edit
// or remove a record. An empty ledger name means the listing spans all
// ledgers of the owner.
func Records(ledger string, entries []ledgerbook.Entry) string {
	view := recordsView{Ledger: ledger}
	if ledger == "" {
		view.Ledger = "all ledgers"
	}
	for i, e := range entries {
		view.Rows = append(view.Rows, recordRow{
			Index:     strconv.Itoa(i),
			Date:      e.Date.String(),
			Direction: string(e.Direction),
			Category:  e.Category,
			Amount:    ledgerbook.M(e.Amount, e.Currency).String(),
			Note:      e.Note,
		})
	}
	return renderTemplate("records", "records.md", nil, view)
}

package renderer

import (
	"github.com/r1ckey7/ledgerbook"
)

type ledgersView struct {
	Owner string
	Rows  []ledgerRow
}

type ledgerRow struct {
	Name     string
	Currency string
}

// Ledgers renders the ledger listing of one owner.
func Ledgers(owner string, infos []ledgerbook.LedgerInfo) string {
	view := ledgersView{Owner: owner}
	for _, info := range infos {
		view.Rows = append(view.Rows, ledgerRow{Name: info.Name, Currency: info.Currency})
	}
	return renderTemplate("ledgers", "ledgers.md", nil, view)
}

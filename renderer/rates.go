package renderer

import (
	"sort"

	"github.com/r1ckey7/ledgerbook"
)

type ratesView struct {
	Base string
	Rows []rateRow
}

type rateRow struct {
	Code string
	Name string
	Rate string
}

// Rates renders a converter's rate table, one row per currency with the
// number of units one unit of the base buys.
func Rates(conv *ledgerbook.Converter) string {
	view := ratesView{Base: conv.Base()}
	table := conv.Rates()
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		view.Rows = append(view.Rows, rateRow{
			Code: code,
			Name: ledgerbook.Currencies[code],
			Rate: table[code].String(),
		})
	}
	return renderTemplate("rates", "rates.md", nil, view)
}

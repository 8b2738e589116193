package ledgerbook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a record annotated with the currency of its source ledger, the
// unit the statistics engine needs to convert its amount for aggregation.
type Entry struct {
	Record
	Currency string
}

// CategoryTotal is the income and expense accumulated by one category,
// expressed in the summary's display currency.
type CategoryTotal struct {
	Category string
	Income   Money
	Expense  Money
}

// Summary aggregates a set of entries in a single display currency. Both
// totals are kept separate so the caller can compute net. Categories appear
// in first-seen order; comparison is exact-string and case-sensitive.
type Summary struct {
	Currency     string
	TotalIncome  Money
	TotalExpense Money
	Categories   []CategoryTotal
}

// Summarize aggregates the entries whose date falls in the period,
// converting every amount into the display currency before summing. The
// zero Range means no date filter. An empty input yields zero totals.
//
// Intermediate sums are exact; every figure in the returned summary is
// rounded half-even to two fractional digits.
func Summarize(entries []Entry, conv *Converter, currency string, period Range) (*Summary, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}

	var totalIncome, totalExpense decimal.Decimal
	index := make(map[string]int) // category -> position in order of first appearance
	type accumulator struct{ income, expense decimal.Decimal }
	var categories []string
	var sums []accumulator

	for _, e := range entries {
		if !period.Contains(e.Date) {
			continue
		}
		amount, err := conv.Convert(e.Amount, e.Currency, currency)
		if err != nil {
			return nil, fmt.Errorf("record of %s in category %q: %w", e.Date, e.Category, err)
		}

		i, ok := index[e.Category]
		if !ok {
			i = len(categories)
			index[e.Category] = i
			categories = append(categories, e.Category)
			sums = append(sums, accumulator{})
		}
		switch e.Direction {
		case Income:
			totalIncome = totalIncome.Add(amount)
			sums[i].income = sums[i].income.Add(amount)
		case Expense:
			totalExpense = totalExpense.Add(amount)
			sums[i].expense = sums[i].expense.Add(amount)
		}
	}

	s := &Summary{
		Currency:     currency,
		TotalIncome:  M(totalIncome, currency).Rounded(),
		TotalExpense: M(totalExpense, currency).Rounded(),
	}
	for i, category := range categories {
		s.Categories = append(s.Categories, CategoryTotal{
			Category: category,
			Income:   M(sums[i].income, currency).Rounded(),
			Expense:  M(sums[i].expense, currency).Rounded(),
		})
	}
	return s, nil
}

// SummarizeYear aggregates the entries of one calendar year.
func SummarizeYear(entries []Entry, conv *Converter, currency string, year int) (*Summary, error) {
	return Summarize(entries, conv, currency, YearRange(year))
}

// SummarizeMonth aggregates the entries of one calendar month.
func SummarizeMonth(entries []Entry, conv *Converter, currency string, year int, month time.Month) (*Summary, error) {
	return Summarize(entries, conv, currency, MonthRange(year, month))
}

// SummarizeAll aggregates the full history of the entries.
func SummarizeAll(entries []Entry, conv *Converter, currency string) (*Summary, error) {
	return Summarize(entries, conv, currency, Range{})
}

// OnDay returns the entries dated exactly on the given day, in input order.
func OnDay(entries []Entry, day Date) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

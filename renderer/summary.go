package renderer

import (
	"github.com/r1ckey7/ledgerbook"
)

// summaryView is the pre-formatted data behind the summary report.
type summaryView struct {
	Title        string
	Currency     string
	TotalIncome  string
	TotalExpense string
	Net          string
	Categories   []categoryRow
}

type categoryRow struct {
	Category string
	Income   string
	Expense  string
}

// Summary renders an aggregation result as a markdown report.
func Summary(title string, s *ledgerbook.Summary) string {
	view := summaryView{
		Title:        title,
		Currency:     s.Currency,
		TotalIncome:  s.TotalIncome.String(),
		TotalExpense: s.TotalExpense.String(),
		Net:          s.TotalIncome.Sub(s.TotalExpense).String(),
	}
	for _, c := range s.Categories {
		view.Categories = append(view.Categories, categoryRow{
			Category: c.Category,
			Income:   c.Income.String(),
			Expense:  c.Expense.String(),
		})
	}
	return renderTemplate("summary", "summary.md", nil, view)
}

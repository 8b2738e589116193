package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/r1ckey7/ledgerbook"
	"github.com/shopspring/decimal"
)

func TestSummary(t *testing.T) {
	entries := []ledgerbook.Entry{
		{
			Record:   ledgerbook.NewRecord(ledgerbook.NewDate(2024, time.March, 5), ledgerbook.Expense, "food", decimal.NewFromInt(40), "lunch"),
			Currency: "EUR",
		},
		{
			Record:   ledgerbook.NewRecord(ledgerbook.NewDate(2024, time.March, 10), ledgerbook.Income, "other", decimal.NewFromInt(500), ""),
			Currency: "EUR",
		},
	}
	s, err := ledgerbook.SummarizeAll(entries, ledgerbook.DefaultConverter(), "EUR")
	if err != nil {
		t.Fatal(err)
	}

	got := Summary("March 2024", s)
	for _, want := range []string{"# Summary: March 2024", "EUR", "food", "other", "| Net |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryEmpty(t *testing.T) {
	s, err := ledgerbook.SummarizeAll(nil, ledgerbook.DefaultConverter(), "EUR")
	if err != nil {
		t.Fatal(err)
	}
	got := Summary("All time", s)
	if !strings.Contains(got, "No records in this period.") {
		t.Errorf("Summary() of an empty period missing placeholder:\n%s", got)
	}
}

func TestRecords(t *testing.T) {
	entries := []ledgerbook.Entry{
		{
			Record:   ledgerbook.NewRecord(ledgerbook.NewDate(2024, time.March, 5), ledgerbook.Expense, "food", decimal.NewFromInt(40), "lunch"),
			Currency: "EUR",
		},
	}

	got := Records("tourism", entries)
	for _, want := range []string{"# Records: tourism", "2024-03-05", "expense", "food", "lunch"} {
		if !strings.Contains(got, want) {
			t.Errorf("Records() output missing %q:\n%s", want, got)
		}
	}

	// An empty name spans all ledgers.
	if got := Records("", nil); !strings.Contains(got, "all ledgers") {
		t.Errorf("Records(\"\") output missing the all-ledgers title:\n%s", got)
	}
}

func TestLedgers(t *testing.T) {
	infos := []ledgerbook.LedgerInfo{
		{Name: "daily", Currency: "AUD"},
		{Name: "tourism", Currency: "EUR"},
	}
	got := Ledgers("alice", infos)
	for _, want := range []string{"# Ledgers of alice", "daily", "AUD", "tourism", "EUR"} {
		if !strings.Contains(got, want) {
			t.Errorf("Ledgers() output missing %q:\n%s", want, got)
		}
	}

	if got := Ledgers("bob", nil); !strings.Contains(got, "No ledgers yet") {
		t.Errorf("Ledgers() of an empty owner missing placeholder:\n%s", got)
	}
}

func TestRates(t *testing.T) {
	got := Rates(ledgerbook.DefaultConverter())
	for _, want := range []string{"# Exchange Rates", "1 AUD buys", "USD", "US Dollar", "0.65"} {
		if !strings.Contains(got, want) {
			t.Errorf("Rates() output missing %q:\n%s", want, got)
		}
	}
}

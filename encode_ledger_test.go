package ledgerbook

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEncodeLedger(t *testing.T) {
	l := NewLedger("local", "tourism", "EUR")
	if err := l.Append(NewRecord(NewDate(2024, time.March, 5), Expense, "food", decimal.NewFromInt(40), "lunch")); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(NewRecord(NewDate(2024, time.March, 10), Income, "other", decimal.NewFromInt(500), "")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}

	want := `{"command":"init","currency":"EUR"}
{"command":"expense","date":"2024-03-05","category":"food","amount":40,"note":"lunch"}
{"command":"income","date":"2024-03-10","category":"other","amount":500}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestDecodeLedger(t *testing.T) {
	jsonlStream := `{"command":"init","currency":"EUR"}
{"command":"expense","date":"2024-03-05","category":"food","amount":40,"note":"lunch"}

{"command":"income","date":"2024-03-10","category":"other","amount":500}
`
	ledger, skipped, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("DecodeLedger() skipped = %d, want 0", skipped)
	}
	if ledger.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", ledger.Currency())
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ledger.Len())
	}

	r, err := ledger.At(0)
	if err != nil {
		t.Fatal(err)
	}
	want := NewRecord(NewDate(2024, time.March, 5), Expense, "food", decimal.NewFromInt(40), "lunch")
	if !r.Equal(want) {
		t.Errorf("At(0) = %+v, want %+v", r, want)
	}
}

func TestDecodeLedgerSkipsCorruptRows(t *testing.T) {
	// One malformed JSON line and one invalid record: both are skipped, the
	// good rows around them survive.
	jsonlStream := `{"command":"init","currency":"USD"}
{"command":"expense","date":"2024-03-05","category":"food","amount":40}
{not json at all
{"command":"transfer","date":"2024-03-06","category":"food","amount":1}
{"command":"income","date":"2024-03-10","category":"other","amount":500}
`
	ledger, skipped, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if skipped != 2 {
		t.Errorf("DecodeLedger() skipped = %d, want 2", skipped)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ledger.Len())
	}
}

func TestDecodeLedgerHeaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream string
	}{
		{"empty stream", ""},
		{"record before header", `{"command":"expense","date":"2024-03-05","category":"food","amount":40}`},
		{"not json", "garbage"},
		{"unsupported currency", `{"command":"init","currency":"XXX"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeLedger(strings.NewReader(tt.stream))
			if err == nil {
				t.Fatal("DecodeLedger() expected an error, got none")
			}
			if tt.name != "unsupported currency" && !errors.Is(err, ErrCorruptRecord) {
				t.Errorf("DecodeLedger() error = %v, want ErrCorruptRecord", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := NewLedger("alice", "daily", "CNY")
	records := []Record{
		NewRecord(NewDate(2024, time.January, 1), Income, "salary", decimal.RequireFromString("8000.50"), ""),
		NewRecord(NewDate(2024, time.January, 2), Expense, "rent", decimal.NewFromInt(2500), "january"),
		NewRecord(NewDate(2024, time.January, 2), Expense, "food", decimal.RequireFromString("35.20"), ""),
	}
	for _, r := range records {
		if err := l.Append(r); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	back, skipped, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if back.Len() != len(records) {
		t.Fatalf("Len() = %d, want %d", back.Len(), len(records))
	}
	for i, want := range records {
		got, _ := back.At(i)
		if !got.Equal(want) {
			t.Errorf("record %d = %+v, want %+v", i, got, want)
		}
	}
}

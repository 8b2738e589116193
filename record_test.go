package ledgerbook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRecordMarshalCanonicalOrder(t *testing.T) {
	r := NewRecord(NewDate(2024, time.March, 5), Expense, "food", decimal.NewFromInt(40), "lunch")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"command":"expense","date":"2024-03-05","category":"food","amount":40,"note":"lunch"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant      %s", data, want)
	}
}

func TestRecordMarshalOmitsEmptyNote(t *testing.T) {
	r := NewRecord(NewDate(2024, time.March, 6), Income, "salary", decimal.NewFromInt(500), "")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"command":"income","date":"2024-03-06","category":"salary","amount":500}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant      %s", data, want)
	}
}

func TestRecordUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Record
		err   bool
	}{
		{
			name:  "expense with note",
			input: `{"command":"expense","date":"2024-03-05","category":"food","amount":40,"note":"lunch"}`,
			want:  NewRecord(NewDate(2024, time.March, 5), Expense, "food", decimal.NewFromInt(40), "lunch"),
		},
		{
			name:  "income without note",
			input: `{"command":"income","date":"2024-03-06","category":"salary","amount":500}`,
			want:  NewRecord(NewDate(2024, time.March, 6), Income, "salary", decimal.NewFromInt(500), ""),
		},
		{
			name:  "unknown direction",
			input: `{"command":"transfer","date":"2024-03-05","category":"food","amount":40}`,
			err:   true,
		},
		{
			name:  "negative amount",
			input: `{"command":"expense","date":"2024-03-05","category":"food","amount":-40}`,
			err:   true,
		},
		{
			name:  "missing category",
			input: `{"command":"expense","date":"2024-03-05","amount":40}`,
			err:   true,
		},
		{
			name:  "missing date",
			input: `{"command":"expense","category":"food","amount":40}`,
			err:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Record
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.err {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.err)
			}
			if !tt.err && !got.Equal(tt.want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("income"); err != nil {
		t.Errorf("ParseDirection(income) error: %v", err)
	}
	if _, err := ParseDirection("expense"); err != nil {
		t.Errorf("ParseDirection(expense) error: %v", err)
	}
	if _, err := ParseDirection("init"); err == nil {
		t.Error("ParseDirection(init) should not be a valid record direction")
	}
	if _, err := ParseDirection(""); err == nil {
		t.Error("ParseDirection(\"\") should fail")
	}
}

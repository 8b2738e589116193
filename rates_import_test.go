package ledgerbook

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestImportRates(t *testing.T) {
	doc := `{
		"base": "USD",
		"date": "2025-10-22",
		"rates": {
			"USD": 1.0,
			"EUR": 0.92,
			"XAU": 0.00031
		}
	}`

	conv, err := ImportRates(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportRates() error: %v", err)
	}
	if conv.Base() != "USD" {
		t.Errorf("Base() = %q, want USD", conv.Base())
	}

	rate, err := conv.Rate("USD", "EUR")
	if err != nil {
		t.Fatalf("Rate() error: %v", err)
	}
	if !rate.Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("Rate(USD, EUR) = %s, want 0.92", rate)
	}

	// XAU is outside the supported set and must have been dropped.
	if _, err := conv.Rate("USD", "XAU"); err == nil {
		t.Error("Rate(USD, XAU) should fail for an unsupported code")
	}
}

func TestImportRatesDefaultsBase(t *testing.T) {
	// A snapshot that omits the base from its own table still works: the
	// base gets rate 1.
	doc := `{"base": "EUR", "rates": {"USD": 1.08}}`
	conv, err := ImportRates(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportRates() error: %v", err)
	}
	rate, err := conv.Rate("EUR", "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Rate(EUR, EUR) = %s, want 1", rate)
	}
}

func TestImportRatesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "nope"},
		{"missing base", `{"rates": {"USD": 1}}`},
		{"unsupported base", `{"base": "XAU", "rates": {"XAU": 1}}`},
		{"missing rates", `{"base": "USD"}`},
		{"rate not a number", `{"base": "USD", "rates": {"USD": "one"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportRates(strings.NewReader(tt.doc)); err == nil {
				t.Error("ImportRates() expected an error, got none")
			}
		})
	}
}

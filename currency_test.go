package ledgerbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCurrency(t *testing.T) {
	for code := range Currencies {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) error: %v", code, err)
		}
	}
	if err := ValidateCurrency("eur"); err != nil {
		t.Errorf("ValidateCurrency is expected to be case insensitive, got: %v", err)
	}
	if err := ValidateCurrency("XXX"); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("ValidateCurrency(XXX) error = %v, want ErrInvalidCurrency", err)
	}
}

func TestNewConverter(t *testing.T) {
	// The base must appear in its own table.
	_, err := NewConverter("USD", map[string]decimal.Decimal{
		"EUR": decimal.NewFromFloat(1.08),
	})
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewConverter() without base rate error = %v, want ErrUnknownCurrency", err)
	}

	// Non-positive rates are rejected.
	_, err = NewConverter("USD", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.Zero,
	})
	if err == nil {
		t.Error("NewConverter() accepted a zero rate")
	}
}

func TestConvert(t *testing.T) {
	// A USD-based table where 1 USD buys 1.08 EUR. Converting 40 EUR to USD
	// and rounding half-even gives 37.04.
	conv, err := NewConverter("USD", map[string]decimal.Decimal{
		"USD": decimal.NewFromFloat(1.0),
		"EUR": decimal.NewFromFloat(1.08),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := conv.Convert(decimal.NewFromInt(40), "EUR", "USD")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if rounded := got.RoundBank(2); !rounded.Equal(decimal.RequireFromString("37.04")) {
		t.Errorf("Convert(40 EUR -> USD) = %s, want 37.04", rounded)
	}
}

func TestConvertIdentity(t *testing.T) {
	conv := DefaultConverter()

	amount := decimal.RequireFromString("123.45")
	got, err := conv.Convert(amount, "EUR", "EUR")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !got.Equal(amount) {
		t.Errorf("identity conversion changed the amount: %s", got)
	}

	// Identity still rejects a code outside the table.
	if _, err := conv.Convert(amount, "XXX", "XXX"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Convert(XXX -> XXX) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// Converting there and back must come home exactly, because the
	// arithmetic is exact decimal until rounded for display.
	conv := DefaultConverter()
	amount := decimal.RequireFromString("100")

	toUSD, err := conv.Convert(amount, "EUR", "USD")
	if err != nil {
		t.Fatal(err)
	}
	back, err := conv.Convert(toUSD, "USD", "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if !back.Round(10).Equal(amount) {
		t.Errorf("round trip EUR -> USD -> EUR = %s, want %s", back, amount)
	}
}

func TestDefaultConverter(t *testing.T) {
	conv := DefaultConverter()
	if conv.Base() != BaseCurrency {
		t.Errorf("Base() = %q, want %q", conv.Base(), BaseCurrency)
	}
	// Every supported currency has a rate.
	for _, code := range CurrencyCodes() {
		if _, err := conv.Rate(BaseCurrency, code); err != nil {
			t.Errorf("Rate(%s, %s) error: %v", BaseCurrency, code, err)
		}
	}
}

func TestConvertMoney(t *testing.T) {
	conv := DefaultConverter()
	got, err := conv.ConvertMoney(M(100, "AUD"), "usd")
	if err != nil {
		t.Fatalf("ConvertMoney() error: %v", err)
	}
	if got.Currency() != "USD" {
		t.Errorf("ConvertMoney() currency = %q, want USD", got.Currency())
	}
	if !got.Amount().Equal(decimal.NewFromInt(65)) {
		t.Errorf("ConvertMoney(100 AUD -> USD) = %s, want 65", got.Amount())
	}
}

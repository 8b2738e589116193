package ledgerbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currencies is the fixed set of supported currency codes with their display
// names. A ledger's currency is chosen from this set at creation and never
// changes.
var Currencies = map[string]string{
	money.USD: "US Dollar",
	money.CNY: "Chinese Yuan",
	money.AUD: "Australian Dollar",
	money.EUR: "Euro",
	money.GBP: "British Pound",
	money.JPY: "Japanese Yen",
	money.CAD: "Canadian Dollar",
	money.HKD: "Hong Kong Dollar",
}

// BaseCurrency is the reference currency of the default rate table.
const BaseCurrency = money.AUD

// CurrencyCodes returns the supported codes in alphabetical order.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(Currencies))
	for code := range Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidateCurrency checks that a code belongs to the supported set.
func ValidateCurrency(code string) error {
	if _, ok := Currencies[strings.ToUpper(code)]; !ok {
		return fmt.Errorf("currency %q: %w", code, ErrInvalidCurrency)
	}
	return nil
}

// Converter converts amounts between currencies using a static rate table.
//
// The table maps each currency code to the number of its units one unit of
// the base currency buys (1 base = rate[code] units of code). Rates are
// process-wide configuration data, never fetched live.
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewConverter builds a converter from a base currency and its rate table.
// The base must appear in the table (normally with rate 1).
func NewConverter(base string, rates map[string]decimal.Decimal) (*Converter, error) {
	base = strings.ToUpper(base)
	table := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %q must be positive, got %s", code, rate)
		}
		table[strings.ToUpper(code)] = rate
	}
	if _, ok := table[base]; !ok {
		return nil, fmt.Errorf("base currency %q: %w", base, ErrUnknownCurrency)
	}
	return &Converter{base: base, rates: table}, nil
}

// DefaultConverter returns the built-in AUD-based table. The figures are
// indicative, not live market data.
func DefaultConverter() *Converter {
	c, err := NewConverter(BaseCurrency, map[string]decimal.Decimal{
		money.AUD: decimal.NewFromInt(1),
		money.USD: decimal.NewFromFloat(0.65),
		money.CNY: decimal.NewFromFloat(4.70),
		money.EUR: decimal.NewFromFloat(0.60),
		money.GBP: decimal.NewFromFloat(0.52),
		money.JPY: decimal.NewFromFloat(98.50),
		money.CAD: decimal.NewFromFloat(0.89),
		money.HKD: decimal.NewFromFloat(5.08),
	})
	if err != nil {
		panic(err.Error()) // the built-in table is known good
	}
	return c
}

// Base returns the converter's base currency code.
func (c *Converter) Base() string { return c.base }

// Rates returns a copy of the rate table.
func (c *Converter) Rates() map[string]decimal.Decimal {
	table := make(map[string]decimal.Decimal, len(c.rates))
	for code, rate := range c.rates {
		table[code] = rate
	}
	return table
}

// Rate returns the cross rate from one currency to another: the number of
// 'to' units one 'from' unit buys.
func (c *Converter) Rate(from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	fromRate, ok := c.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("currency %q: %w", from, ErrUnknownCurrency)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("currency %q: %w", to, ErrUnknownCurrency)
	}
	return toRate.Div(fromRate), nil
}

// Convert converts an amount between currencies through the base. The result
// is exact decimal arithmetic: rounding happens only at display or
// aggregation output.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if strings.EqualFold(from, to) {
		// identity, but still reject unknown codes
		if _, ok := c.rates[strings.ToUpper(from)]; !ok {
			return decimal.Zero, fmt.Errorf("currency %q: %w", from, ErrUnknownCurrency)
		}
		return amount, nil
	}
	rate, err := c.Rate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// ConvertMoney converts a Money value into the given display currency.
func (c *Converter) ConvertMoney(m Money, to string) (Money, error) {
	value, err := c.Convert(m.Amount(), m.Currency(), to)
	if err != nil {
		return Money{}, err
	}
	return M(value, strings.ToUpper(to)), nil
}

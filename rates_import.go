package ledgerbook

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	An exported rates snapshot is the JSON document shape most rate
	services hand out:

	{
	    "base": "AUD",
	    "date": "2025-10-22",
	    "rates": {
	        "USD": 0.65,
	        "EUR": 0.60,
	        "XAU": 0.00031
	    }
	}
*/

// ImportRates builds a converter from an exported rates snapshot. Codes
// outside the supported set are ignored with a warning; the base currency
// must be supported and gets rate 1 when the document omits it. The table
// stays static for the life of the process.
func ImportRates(r io.Reader) (*Converter, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid rates document: %w", err)
	}

	jval, err := jsonpath.Get("$.base", jobj)
	if err != nil {
		return nil, fmt.Errorf("rates document has no base currency: %w", err)
	}
	base, ok := jval.(string)
	if !ok {
		return nil, fmt.Errorf("rates document base is not a string: %v", jval)
	}
	if err := ValidateCurrency(base); err != nil {
		return nil, err
	}

	jval, err = jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("rates document has no rate table: %w", err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rates document table is not an object: %v", jval)
	}

	table := make(map[string]decimal.Decimal, len(jrates))
	for code, v := range jrates {
		if _, supported := Currencies[code]; !supported {
			log.Printf("ignoring rate for unsupported currency %q", code)
			continue
		}
		rate, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("rate for %q is not a number: %v", code, v)
		}
		table[code] = decimal.NewFromFloat(rate)
	}
	if _, ok := table[base]; !ok {
		table[base] = decimal.NewFromInt(1)
	}

	return NewConverter(base, table)
}

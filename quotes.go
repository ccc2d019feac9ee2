package eportfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeQuotes reads a JSON document of latest prices and returns them by symbol.
//
// path is a JSONPath expression selecting an object of symbol to price, where
// a price is a number or a numeric string. For instance, with
//
//	{"data": {"quotes": {"ABC": 12.5, "XYZ": "101.20"}}}
//
// path is "$.data.quotes".
func DecodeQuotes(r io.Reader, path string) (map[string]Money, error) {
	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error parsing quotes: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q on quotes: %w", path, err)
	}
	// jsonpath may wrap a single answer in a list: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	jmap, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error evaluating %q on quotes: want an object of symbol to price, got %T", path, jval)
	}

	prices := make(map[string]Money, len(jmap))
	for symbol, v := range jmap {
		var s string
		switch t := v.(type) {
		case json.Number:
			s = t.String()
		case string:
			s = t
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("invalid price for %q: want a number, got %T", symbol, v)
		}
		price, err := ParseMoney(s)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %q: %w", symbol, err)
		}
		prices[symbol] = price
	}
	return prices, nil
}

// Reprice sets the price of every holding found in prices (symbols are matched
// ignoring case). It returns the symbols of the holdings updated, in portfolio
// order. Prices for unknown symbols are ignored. Nothing is changed if any
// matching price is not positive, or if two symbols of prices match the same
// holding.
func (p *Portfolio) Reprice(prices map[string]Money) ([]string, error) {
	type update struct {
		h     *Holding
		price Money
	}
	var updates []update
	matched := make(map[*Holding]string)
	for symbol, price := range prices {
		h, ok := p.Find(symbol)
		if !ok {
			continue
		}
		if other, dup := matched[h]; dup {
			return nil, fmt.Errorf("%w: prices for both %q and %q", ErrInvalidArgument, other, symbol)
		}
		matched[h] = symbol
		if err := validatePrice(price); err != nil {
			return nil, fmt.Errorf("price for %q: %w", symbol, err)
		}
		updates = append(updates, update{h, price})
	}

	for _, u := range updates {
		u.h.price = u.price
	}
	var updated []string
	for _, h := range p.holdings {
		for _, u := range updates {
			if u.h == h {
				updated = append(updated, h.symbol)
				break
			}
		}
	}
	return updated, nil
}

package eportfolio

import "strings"

// Search returns the holdings whose name or symbol contains every keyword of
// query, in portfolio order. Keywords are separated by whitespace and matched
// ignoring case. An empty query matches nothing.
func (p *Portfolio) Search(query string) []*Holding {
	positions := p.index.lookup(keywords(query))
	result := make([]*Holding, 0, len(positions))
	for _, i := range positions {
		result = append(result, p.holdings[i])
	}
	return result
}

// Filter narrows down a list of holdings.
// The zero value accepts everything.
type Filter struct {
	Symbol string // when set, the symbol must be equal, ignoring case
	Low    Money  // when positive, the price must be at least Low
	High   Money  // when positive, the price must be at most High
}

// Match reports whether h passes the filter.
func (f Filter) Match(h *Holding) bool {
	if f.Symbol != "" && !strings.EqualFold(strings.TrimSpace(f.Symbol), h.symbol) {
		return false
	}
	if f.Low.IsPositive() && h.price.LessThan(f.Low) {
		return false
	}
	if f.High.IsPositive() && h.price.GreaterThan(f.High) {
		return false
	}
	return true
}

// Select returns the holdings matching f, keeping their order.
func Select(holdings []*Holding, f Filter) []*Holding {
	var out []*Holding
	for _, h := range holdings {
		if f.Match(h) {
			out = append(out, h)
		}
	}
	return out
}

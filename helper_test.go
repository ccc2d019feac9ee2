package eportfolio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustHolding is a helper for test to create a valid holding from constants.
func mustHolding(t *testing.T, kind Kind, symbol, name string, quantity int, price, bookValue string) *Holding {
	t.Helper()
	h, err := NewHolding(kind, symbol, name, quantity, mustMoney(price), mustMoney(bookValue))
	if err != nil {
		t.Fatalf("NewHolding(%q) error = %v", symbol, err)
	}
	return h
}

// mustLoad returns a portfolio loaded with holdings.
func mustLoad(t *testing.T, holdings ...*Holding) *Portfolio {
	t.Helper()
	p := New()
	if err := p.Load(holdings...); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return p
}

// checkIndex fails if the index of p differs from an index rebuilt from scratch.
func checkIndex(t *testing.T, p *Portfolio) {
	t.Helper()
	fresh := make(keywordIndex)
	fresh.rebuild(p.holdings)
	if diff := cmp.Diff(fresh, p.index); diff != "" {
		t.Errorf("index is not consistent with holdings (-rebuilt +actual):\n%s", diff)
	}
}

func symbolsOf(holdings []*Holding) []string {
	var symbols []string
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol())
	}
	return symbols
}

package eportfolio

import (
	"slices"
	"testing"
)

func searchPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	return mustLoad(t,
		mustHolding(t, MutualFund, "TGF", "Tech Growth Fund", 10, "20", "245"),
		mustHolding(t, Stock, "TSU", "Tech Startup", 5, "10", "59.99"),
		mustHolding(t, Stock, "OIL", "Big Oil Growth", 5, "80", "409.99"),
	)
}

func TestPortfolio_Search(t *testing.T) {
	p := searchPortfolio(t)

	testCases := []struct {
		query string
		want  []string
	}{
		{"tech", []string{"TGF", "TSU"}},
		{"TECH", []string{"TGF", "TSU"}},
		{"tech growth", []string{"TGF"}},
		{"growth", []string{"TGF", "OIL"}},
		{"  growth   tech ", []string{"TGF"}},
		{"tsu", []string{"TSU"}},
		{"tech oil", nil},
		{"energy", nil},
		{"", nil},
		{"   ", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			got := p.Search(tc.query)
			if got == nil {
				t.Fatal("Search() returned nil, want an empty slice")
			}
			if symbols := symbolsOf(got); !slices.Equal(symbols, tc.want) {
				t.Errorf("Search(%q) = %v, want %v", tc.query, symbols, tc.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	holdings := searchPortfolio(t).Holdings()

	testCases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter", Filter{}, []string{"TGF", "TSU", "OIL"}},
		{"symbol", Filter{Symbol: "tsu"}, []string{"TSU"}},
		{"low", Filter{Low: M(20)}, []string{"TGF", "OIL"}},
		{"high", Filter{High: M(20)}, []string{"TGF", "TSU"}},
		{"range is inclusive", Filter{Low: M(20), High: M(20)}, []string{"TGF"}},
		{"all criteria", Filter{Symbol: "OIL", Low: M(1), High: M(10)}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := symbolsOf(Select(holdings, tc.filter)); !slices.Equal(got, tc.want) {
				t.Errorf("Select() = %v, want %v", got, tc.want)
			}
		})
	}
}

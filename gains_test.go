package eportfolio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPortfolio_Gains(t *testing.T) {
	p := New()
	if _, err := p.Buy(Stock, "TGF", "Tech Growth Fund", 10, M(20)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Buy(MutualFund, "MF", "Money Fund", 100, M(10)); err != nil {
		t.Fatal(err)
	}
	h, _ := p.Find("TGF")
	if err := p.UpdatePrice(h, M(25)); err != nil {
		t.Fatal(err)
	}

	got := p.IndividualGains()
	want := []Gain{
		{Name: "Tech Growth Fund", Symbol: "TGF", Gain: mustMoney("40.01")},
		{Name: "Money Fund", Symbol: "MF", Gain: mustMoney("-45")},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(Money.Equal)); diff != "" {
		t.Errorf("IndividualGains() mismatch (-want +got):\n%s", diff)
	}

	if want := mustMoney("-4.99"); !p.TotalGain().Equal(want) {
		t.Errorf("TotalGain() = %v, want %v", p.TotalGain(), want)
	}
}

func TestPortfolio_Gains_Empty(t *testing.T) {
	p := New()
	if !p.TotalGain().IsZero() {
		t.Errorf("TotalGain() = %v, want 0", p.TotalGain())
	}
	if got := p.IndividualGains(); len(got) != 0 {
		t.Errorf("IndividualGains() = %v, want none", got)
	}
}

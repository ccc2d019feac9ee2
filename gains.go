package eportfolio

// Gain is the unrealized gain of one holding.
type Gain struct {
	Name   string
	Symbol string
	Gain   Money
}

// TotalGain returns the sum over all holdings of price*quantity - book value.
func (p *Portfolio) TotalGain() Money {
	var total Money
	for _, h := range p.holdings {
		total = total.Add(h.Gain())
	}
	return total
}

// IndividualGains returns the gain of each holding, in portfolio order.
func (p *Portfolio) IndividualGains() []Gain {
	gains := make([]Gain, 0, len(p.holdings))
	for _, h := range p.holdings {
		gains = append(gains, Gain{Name: h.name, Symbol: h.symbol, Gain: h.Gain()})
	}
	return gains
}

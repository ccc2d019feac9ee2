package eportfolio

import (
	"fmt"
	"strings"
)

// Sale is the outcome of selling part or all of a holding.
type Sale struct {
	Symbol   string
	Quantity int
	Payment  Money // quantity * sell price
	Fee      Money
	Proceeds Money // payment - fee
	Gain     Money // proceeds - book value share of the units sold
	Removed  bool  // the holding was fully sold and removed
}

// String returns the message reported to the user.
func (s Sale) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You received %s for selling %d units of %s.\n", s.Proceeds, s.Quantity, s.Symbol)
	fmt.Fprintf(&b, "Gain from this sale: %s.\n", s.Gain)
	if s.Removed {
		fmt.Fprintf(&b, "Investment with symbol '%s' fully sold and removed from portfolio.\n", s.Symbol)
	}
	return b.String()
}

// Sell sells quantity units of the holding matching symbol (ignoring case) at price.
//
// The gain is realized against the share of book value of the units sold,
// quantity/held. Selling everything removes the holding. Otherwise the
// remaining book value shrinks in the same proportion as the quantity.
func (p *Portfolio) Sell(symbol string, quantity int, price Money) (Sale, error) {
	i := p.position(symbol)
	if i < 0 {
		return Sale{}, fmt.Errorf("%w with symbol %q", ErrNotFound, symbol)
	}
	h := p.holdings[i]
	held := h.quantity
	if quantity <= 0 || quantity > held {
		return Sale{}, fmt.Errorf("%w: %d, holding %d units of %s", ErrInvalidQuantity, quantity, held, h.symbol)
	}

	payment := price.Mul(quantity)
	fee := h.kind.Fee()
	proceeds := payment.Sub(fee)
	sale := Sale{
		Symbol:   h.symbol,
		Quantity: quantity,
		Payment:  payment,
		Fee:      fee,
		Proceeds: proceeds,
		Gain:     proceeds.Sub(h.bookValue.Scale(quantity, held)),
	}

	remaining := held - quantity
	h.quantity = remaining
	if remaining == 0 {
		p.remove(i)
		sale.Removed = true
		return sale, nil
	}
	h.SetBookValue(h.bookValue.Scale(remaining, remaining+quantity))
	return sale, nil
}

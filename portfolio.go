package eportfolio

import (
	"fmt"
	"slices"
	"strings"
)

// Portfolio is an ordered collection of holdings with a keyword index over
// their names and symbols.
//
// Holdings keep their insertion order. The index refers to holdings by
// position, so every operation that removes a holding rebuilds it.
//
// The zero value is an empty portfolio. A Portfolio is not safe for concurrent use.
type Portfolio struct {
	holdings []*Holding
	index    keywordIndex
}

// New returns an empty portfolio.
func New() *Portfolio {
	return &Portfolio{index: make(keywordIndex)}
}

// Load appends already validated holdings, in order, and indexes them.
//
// Nothing is appended if any holding is nil, already belongs to a portfolio,
// or has a symbol already present.
func (p *Portfolio) Load(holdings ...*Holding) error {
	seen := make(map[string]bool, len(holdings))
	for _, h := range holdings {
		if h == nil {
			return fmt.Errorf("%w: nil holding", ErrInvalidArgument)
		}
		if h.owner != nil {
			return fmt.Errorf("%w: holding %q already belongs to a portfolio", ErrInvalidArgument, h.symbol)
		}
		key := strings.ToLower(h.symbol)
		if _, exists := p.Find(h.symbol); exists || seen[key] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidArgument, h.symbol)
		}
		seen[key] = true
	}
	for _, h := range holdings {
		h.owner = p
		p.holdings = append(p.holdings, h)
	}
	p.reindex()
	return nil
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Holdings returns the holdings in insertion order.
// The returned slice is a copy, changing it does not change the portfolio.
func (p *Portfolio) Holdings() []*Holding { return slices.Clone(p.holdings) }

// Find returns the first holding whose symbol matches, ignoring case.
func (p *Portfolio) Find(symbol string) (*Holding, bool) {
	i := p.position(symbol)
	if i < 0 {
		return nil, false
	}
	return p.holdings[i], true
}

func (p *Portfolio) position(symbol string) int {
	return slices.IndexFunc(p.holdings, func(h *Holding) bool { return strings.EqualFold(h.symbol, symbol) })
}

// AddOrMerge adds a new holding or merges a purchase into the existing one.
//
// When a holding with the same symbol exists, quantity is added to it, its book
// value grows by quantity*price (bookValue is ignored) and its price becomes price.
// The existing holding must be of the same kind.
//
// Otherwise a new holding is created with bookValue, appended and indexed.
func (p *Portfolio) AddOrMerge(kind Kind, symbol, name string, quantity int, price, bookValue Money) error {
	if h, ok := p.Find(symbol); ok {
		if h.kind != kind {
			return fmt.Errorf("%w: %q is a %s, cannot merge a %s into it", ErrInvalidArgument, h.symbol, h.kind, kind)
		}
		return p.UpdateExisting(h, quantity, price)
	}

	h, err := NewHolding(kind, symbol, name, quantity, price, bookValue)
	if err != nil {
		return err
	}
	p.append(h)
	return nil
}

// append adds h at the end and indexes it.
func (p *Portfolio) append(h *Holding) {
	if p.index == nil {
		p.index = make(keywordIndex)
	}
	h.owner = p
	p.holdings = append(p.holdings, h)
	p.index.add(h, len(p.holdings)-1)
}

// Buy records a purchase as the buy form does: it adds to the holding with the
// same symbol, which must be of the same kind, or creates one whose book value
// includes the kind's fee.
func (p *Portfolio) Buy(kind Kind, symbol, name string, quantity int, price Money) (*Holding, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := p.AddOrMerge(kind, symbol, name, quantity, price, PurchaseBookValue(kind, quantity, price)); err != nil {
		return nil, err
	}
	h, _ := p.Find(symbol)
	return h, nil
}

// UpdatePrice sets the price of h, which must belong to p.
func (p *Portfolio) UpdatePrice(h *Holding, price Money) error {
	if err := p.owns(h); err != nil {
		return err
	}
	return h.SetPrice(price)
}

// UpdateExisting adds quantity units bought at price to h, which must belong to p.
// The book value grows by quantity*price and price becomes the holding's price.
func (p *Portfolio) UpdateExisting(h *Holding, quantity int, price Money) error {
	if err := p.owns(h); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if err := h.SetPrice(price); err != nil {
		return err
	}
	h.quantity += quantity
	h.bookValue = h.bookValue.Add(price.Mul(quantity))
	return nil
}

func (p *Portfolio) owns(h *Holding) error {
	if h == nil || h.owner != p {
		return fmt.Errorf("%w: holding does not belong to this portfolio", ErrNotFound)
	}
	return nil
}

// remove deletes the holding at position i and rebuilds the index, since every
// following holding changes position.
func (p *Portfolio) remove(i int) {
	p.holdings[i].owner = nil
	p.holdings = slices.Delete(p.holdings, i, i+1)
	p.reindex()
}

func (p *Portfolio) reindex() {
	if p.index == nil {
		p.index = make(keywordIndex)
	}
	p.index.rebuild(p.holdings)
}

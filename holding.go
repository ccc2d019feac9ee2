package eportfolio

import (
	"fmt"
	"strings"
)

// Holding is one position of a portfolio: a quantity of a stock or mutual fund,
// its last known unit price, and its book value (total cost basis of the position).
//
// Fields are only reachable through validating setters. A holding that belongs to
// a Portfolio notifies it when its symbol or name changes, so that keyword search
// stays consistent.
type Holding struct {
	kind      Kind
	symbol    string
	name      string
	quantity  int
	price     Money
	bookValue Money

	owner *Portfolio
}

// NewHolding returns a validated holding.
// bookValue is taken as given, callers compute it (see PurchaseBookValue).
func NewHolding(kind Kind, symbol, name string, quantity int, price, bookValue Money) (*Holding, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	return &Holding{
		kind:      kind,
		symbol:    symbol,
		name:      name,
		quantity:  quantity,
		price:     price,
		bookValue: bookValue,
	}, nil
}

func (h *Holding) Kind() Kind       { return h.kind }
func (h *Holding) Symbol() string   { return h.symbol }
func (h *Holding) Name() string     { return h.name }
func (h *Holding) Quantity() int    { return h.quantity }
func (h *Holding) Price() Money     { return h.price }
func (h *Holding) BookValue() Money { return h.bookValue }

// MarketValue returns price * quantity.
func (h *Holding) MarketValue() Money { return h.price.Mul(h.quantity) }

// Gain returns the unrealized gain: market value minus book value.
func (h *Holding) Gain() Money { return h.MarketValue().Sub(h.bookValue) }

// SetQuantity sets the quantity held. Zero is only accepted for a holding that
// does not belong to a portfolio: an owned holding is emptied by selling it.
func (h *Holding) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be zero or greater, got %d", ErrInvalidArgument, quantity)
	}
	if quantity == 0 && h.owner != nil {
		return fmt.Errorf("%w: sell %s to empty it", ErrInvalidArgument, h.symbol)
	}
	h.quantity = quantity
	return nil
}

func (h *Holding) SetPrice(price Money) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	h.price = price
	return nil
}

// SetBookValue sets the book value without any check.
func (h *Holding) SetBookValue(bookValue Money) { h.bookValue = bookValue }

// SetSymbol changes the symbol. When h belongs to a portfolio, the symbol must
// not be used by another of its holdings.
func (h *Holding) SetSymbol(symbol string) error {
	if err := validateSymbol(symbol); err != nil {
		return err
	}
	if h.owner != nil {
		if other, ok := h.owner.Find(symbol); ok && other != h {
			return fmt.Errorf("%w: symbol %q is already held", ErrInvalidArgument, symbol)
		}
	}
	h.symbol = symbol
	if h.owner != nil {
		h.owner.reindex()
	}
	return nil
}

func (h *Holding) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	h.name = name
	if h.owner != nil {
		h.owner.reindex()
	}
	return nil
}

func (h *Holding) String() string {
	return fmt.Sprintf("Name: %s, Symbol: %s, Type: %s, Quantity: %d, Price: %s, Book value: %s",
		h.name, h.symbol, h.kind, h.quantity, h.price, h.bookValue)
}

// MarshalJSON writes the holding with a stable field order.
func (h *Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", h.kind.String())
	w.Append("symbol", h.symbol)
	w.Append("name", h.name)
	w.Append("quantity", h.quantity)
	w.Append("price", h.price)
	w.Append("bookValue", h.bookValue)
	w.Append("gain", h.Gain().Round())
	return w.MarshalJSON()
}

func validateKind(kind Kind) error {
	if kind != Stock && kind != MutualFund {
		return fmt.Errorf("%w: unknown investment type %v", ErrInvalidArgument, kind)
	}
	return nil
}

func validateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: symbol cannot be empty", ErrInvalidArgument)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0, got %d", ErrInvalidArgument, quantity)
	}
	return nil
}

func validatePrice(price Money) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than 0, got %s", ErrInvalidArgument, price.value)
	}
	return nil
}

package eportfolio

import (
	"fmt"
	"strings"
)

// Kind is the type of investment a holding is made of.
type Kind int

const (
	Stock Kind = iota
	MutualFund
)

var (
	stockFee      = mustMoney("9.99")
	mutualFundFee = mustMoney("45.00")
)

// Fee returns the fixed transaction fee charged when buying or selling this kind of investment.
func (k Kind) Fee() Money {
	switch k {
	case MutualFund:
		return mutualFundFee
	default:
		return stockFee
	}
}

func (k Kind) String() string {
	switch k {
	case Stock:
		return "stock"
	case MutualFund:
		return "mutualfund"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "stock" or "mutualfund", ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return Stock, nil
	case "mutualfund":
		return MutualFund, nil
	}
	return Stock, fmt.Errorf("%w: unknown investment type %q, want 'stock' or 'mutualfund'", ErrInvalidArgument, s)
}

// PurchaseBookValue returns the cost basis of a new position: quantity*price plus the kind's fee.
func PurchaseBookValue(k Kind, quantity int, price Money) Money {
	return price.Mul(quantity).Add(k.Fee())
}

package eportfolio

import "errors"

// Errors returned by holdings and portfolios. They are wrapped with details,
// use errors.Is to test for them.
var (
	// ErrInvalidArgument indicates a field value that a holding cannot accept:
	// blank text, non-positive quantity or price, unknown kind, or a kind mismatch on merge.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates that no holding matches the requested symbol.
	ErrNotFound = errors.New("no investment found")

	// ErrInvalidQuantity indicates a sell quantity that is not positive or exceeds the quantity held.
	ErrInvalidQuantity = errors.New("invalid quantity to sell")
)

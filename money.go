package eportfolio

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code used to display every amount of a portfolio.
const Currency = "USD"

// displayFraction is the number of decimals kept when an amount is displayed or persisted.
const displayFraction = 2

// maxCents is the largest amount of cents the currency formatter can take.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents an exact monetary amount in the portfolio currency.
// The zero value is zero.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "1009.99".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// mustMoney is ParseMoney for constants.
func mustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Mul returns m multiplied by a number of units.
func (m Money) Mul(units int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(units)))} }

// Scale returns m * num / den. Multiplication happens first to keep the result exact
// whenever num/den is not a finite decimal.
func (m Money) Scale(num, den int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(num))).Div(decimal.NewFromInt(int64(den)))}
}

// Round returns m rounded to the display precision.
func (m Money) Round() Money { return Money{value: m.value.Round(displayFraction)} }

// Fixed returns the amount rounded to two decimals without any currency symbol, e.g. "1009.99".
func (m Money) Fixed() string { return m.value.StringFixed(displayFraction) }

// String returns the amount rounded to two decimals in the currency format, e.g. "$1,009.99".
func (m Money) String() string {
	cur := money.New(0, Currency).Currency()
	cents := m.value.Round(displayFraction).Shift(displayFraction)
	if cents.Abs().GreaterThan(maxCents) {
		return m.value.StringFixed(displayFraction)
	}
	return cur.Formatter().Format(cents.IntPart())
}

// SignedString returns the display string with a leading sign. Zero is "-".
func (m Money) SignedString() string {
	if m.value.Round(displayFraction).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the exact amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

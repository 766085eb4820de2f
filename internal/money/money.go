package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is prefixed to rendered amounts.
const Symbol = "₹"

// minorPerMajor is the number of minor units (paise) in one major unit (rupee).
const minorPerMajor = 100

// ErrInvalidAmount is returned when text cannot be read as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an exact amount stored in minor currency units.
// It is an immutable value object; every operation returns a new value.
type Money struct {
	minor int64
}

// Zero returns an amount of nothing.
func Zero() Money {
	return Money{}
}

// FromMinor creates an amount from minor units (e.g. paise).
func FromMinor(minor int64) Money {
	return Money{minor: minor}
}

// FromDecimal converts a major-unit decimal into Money, rounding to the nearest minor unit.
func FromDecimal(amount decimal.Decimal) Money {
	return Money{minor: amount.Mul(decimal.NewFromInt(minorPerMajor)).Round(0).IntPart()}
}

// Parse reads a major-unit amount such as "999" or "4999.50".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: could not parse amount '%s': %v", ErrInvalidAmount, s, err)
	}
	return FromDecimal(d), nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and literals.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Sum adds all the given amounts.
func Sum(amounts ...Money) Money {
	var total int64
	for _, a := range amounts {
		total += a.minor
	}
	return Money{minor: total}
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -2)
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// Subtract may yield a negative amount; callers clamp where a price must stay non-negative.
func (m Money) Subtract(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

func (m Money) Multiply(quantity int) Money {
	return Money{minor: m.minor * int64(quantity)}
}

// Percentage returns percent% of the amount, truncating toward zero.
func (m Money) Percentage(percent int) Money {
	return Money{minor: (m.minor * int64(percent)) / 100}
}

func (m Money) Min(other Money) Money {
	if m.minor <= other.minor {
		return m
	}
	return other
}

func (m Money) GreaterThan(other Money) bool {
	return m.minor > other.minor
}

func (m Money) LessThan(other Money) bool {
	return m.minor < other.minor
}

func (m Money) Equals(other Money) bool {
	return m.minor == other.minor
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) IsPositive() bool {
	return m.minor > 0
}

func (m Money) IsNegative() bool {
	return m.minor < 0
}

// String renders the amount with the currency symbol and two decimals, e.g. ₹5377.92.
func (m Money) String() string {
	if m.minor < 0 {
		return "-" + Symbol + m.Decimal().Neg().StringFixed(2)
	}
	return Symbol + m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a fixed two-decimal string in major units.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal().StringFixed(2))
}

// UnmarshalJSON accepts either a quoted decimal string or a bare number in major units.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("could not parse amount %s: %w", string(data), err)
	}
	*m = FromDecimal(d)
	return nil
}

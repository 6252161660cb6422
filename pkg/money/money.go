// Package money provides the monetary value object used across the ledger.
//
// It is a single-currency money type: the ledger deals in exactly one
// currency, so Money carries no currency code. Invariants:
//   - Amount is always stored in the smallest currency unit (cents).
//   - Arithmetic never leaves the integer domain; floats only appear at
//     API boundaries and are converted exactly once.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount is returned when a float amount cannot be represented
	// as an exact number of cents (NaN, infinity, or out of range).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidFormat is returned when a string cannot be parsed as a
	// fixed-decimal amount.
	ErrInvalidFormat = errors.New("invalid amount format")
)

// decimals is the number of fractional digits carried by the currency.
const decimals = 2

const centsPerUnit = 100

// Money represents a monetary value as an integer number of cents.
// The zero value is a valid Money of zero cents.
type Money struct {
	cents int64
}

// Zero is the zero monetary value.
var Zero = Money{}

// New creates a Money from a float64 amount in main units (dollars),
// rounding to the nearest cent. It returns ErrInvalidAmount if the value is
// not finite or does not fit in an int64 number of cents.
func New(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	cents := math.Round(amount * centsPerUnit)
	if cents > math.MaxInt64 || cents < math.MinInt64 {
		return Zero, fmt.Errorf("%w: %v exceeds maximum safe value", ErrInvalidAmount, amount)
	}
	return Money{cents: int64(cents)}, nil
}

// Must creates a Money from a float64 amount and panics if the amount is
// invalid. Intended for constants and test fixtures.
func Must(amount float64) Money {
	m, err := New(amount)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v): %v", amount, err))
	}
	return m
}

// FromCents creates a Money from an amount already expressed in cents.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse converts a fixed-decimal string such as "1234.56" or "-12.50" into
// Money. At most two fractional digits are accepted; this is the format the
// store writes. Returns ErrInvalidFormat on anything else.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	var cents int64
	if hasFrac {
		if len(frac) > decimals {
			return Zero, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidFormat, s, decimals)
		}
		for len(frac) < decimals {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	total := units*centsPerUnit + cents
	if neg {
		total = -total
	}
	return Money{cents: total}, nil
}

// Cents returns the amount in the smallest currency unit.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in main units. Only for display and API
// responses; never feed the result back into arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / centsPerUnit
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m minus other.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Neg returns m with the sign flipped.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Equals reports whether both amounts are identical.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a fixed two-decimal string ("1234.56",
// "-12.50"). This is the exact format persisted by the store.
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/centsPerUnit, c%centsPerUnit)
}

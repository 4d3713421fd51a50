package kernel

import (
	"fmt"
	"math"
	"strconv"

	"instagrow/internal/pkg/errs"
)

// Money is a fixed-point monetary amount in a single implicit currency (BRL).
// Amounts are stored as integer cents so that aggregation over many orders
// never accumulates floating-point drift.
//
// Money is a value object: immutable, comparable, and safe to copy. The zero
// value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an integer number of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat creates a Money from a float amount such as 49.90,
// rounding half away from zero to whole cents.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not a finite number", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromString parses a decimal amount such as "49.90".
func MoneyFromString(s string) (Money, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromFloat(amount)
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a float with two-decimal precision.
// Intended for serialization at the API boundary, not for arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "49.90".
func (m Money) String() string {
	sign := ""
	cents := m.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

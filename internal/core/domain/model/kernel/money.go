package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Money is a value object representing a monetary amount as an integer number
// of cents. Keeping amounts integral makes the order total invariant
// (total = subtotal + tax) exact; there is no floating point drift between
// what the customer saw and what the kitchen settles.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid zero amount, so Money can be summed with a plain loop.
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from cents. Negative amounts are invalid:
// discounts and refunds are out of scope for the coordinator, so every amount
// it handles is non-negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in currency units for presentation.
// Persistence and comparison always go through Cents.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

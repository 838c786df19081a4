package kernel

import (
	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
)

// moneyScale is the number of decimal places stored for monetary amounts.
const moneyScale = 2

// Money is a value object that represents a monetary amount as an exact
// decimal. It wraps github.com/shopspring/decimal to keep monetary arithmetic
// out of binary floating point, which matters because tax rates participate
// in monetary rounding.
//
// Money is immutable: every operation returns a new value. The zero value is
// a valid zero amount.
//
// Rounding to the stored precision (2 decimal places) is applied only when an
// amount is about to be persisted, via Round. Intermediate computations keep
// full precision.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromDecimal creates a Money from an exact decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a Money from its decimal string representation.
// Returns a validation error if the string is not a valid decimal.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero monetary amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an exact decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// Round returns the amount rounded half-up to the stored precision.
// Called by the persistence layer before writing monetary columns.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(moneyScale)}
}

// Decimal returns the underlying exact decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts for numeric equality, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the fixed-point string representation at the stored precision.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

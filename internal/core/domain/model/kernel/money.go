package kernel

import (
	"fmt"

	"escrow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a currency amount with two decimal
// places of precision. It wraps github.com/shopspring/decimal to avoid the
// rounding drift of floating-point arithmetic on payment amounts.
//
// Money keeps one important invariant for split payments: a total divided
// into an advance and a remainder always recomposes exactly. The advance is
// rounded to two decimal places; the remainder must be computed with Sub so
// it stays the subtractive complement rather than being rounded on its own.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromFloat creates a Money value from a float, rounded to two
// decimal places. Negative amounts are allowed here; domain constructors
// impose positivity where it matters.
func NewMoneyFromFloat(value float64) Money {
	return Money{amount: decimal.NewFromFloat(value).Round(2)}
}

// MoneyFromDecimal wraps an existing decimal value, rounding to two decimal
// places. Used by persistence adapters when rehydrating amounts.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(2)}
}

// MoneyFromString parses a decimal string such as "149.90".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d.Round(2)}, nil
}

// Percent returns the given percentage of the amount, rounded to two
// decimal places. Percent(50) of 1000.00 is 500.00.
func (m Money) Percent(pct float64) Money {
	factor := decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Mul(factor).Round(2)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. This is the only correct way to
// derive a remaining balance from a total and an advance.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float, for read-model responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with exactly two decimal places, e.g. "500.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Dollar renders the amount prefixed with a dollar sign, e.g. "$500.00",
// the form used in notification messages and terms text.
func (m Money) Dollar() string {
	return fmt.Sprintf("$%s", m.amount.StringFixed(2))
}

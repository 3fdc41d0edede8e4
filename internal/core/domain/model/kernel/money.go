package kernel

import (
	"fmt"
	"math"

	"repairshop/internal/pkg/errs"
)

// Money is a non-negative amount in cents.
type Money struct {
	cents int64
}

// MoneyFromCents builds an amount from cents. Negative amounts are invalid.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat rounds a decimal amount, as typed in a form, to cents.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return MoneyFromCents(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in currency units, for JSON responses.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount with two decimals, e.g. "1500.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

package kernel

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (cents). Ledger sums are always
// computed on Money so totals never drift past two decimal places.
type Money int64

// MoneyFromMajor converts a decimal amount such as 25.50 to cents, rounding half
// away from zero.
func MoneyFromMajor(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Major renders the amount as a decimal for the HTTP boundary.
func (m Money) Major() float64 {
	return float64(m) / 100
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// SumMoney adds amounts in minor units.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

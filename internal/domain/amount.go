package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an optional decimal read from a user-editable cell.
// The zero value is absent.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// NewAmount returns a present Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{value: decimal.NewFromFloat(v), valid: true}
}

// AmountFromDecimal returns a present Amount holding d.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d, valid: true}
}

// ParseAmount parses cell text such as "12.00", "$1,250.50" or " 4.5 ".
// Empty or malformed text yields an absent Amount.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}

	return Amount{value: d, valid: true}
}

// Valid reports whether the amount is present.
func (a Amount) Valid() bool {
	return a.valid
}

// Decimal returns the value and whether it is present.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	return a.value, a.valid
}

// Float64 returns the value as a float, or 0 when absent.
func (a Amount) Float64() float64 {
	if !a.valid {
		return 0
	}

	return a.value.InexactFloat64()
}

// Mul multiplies a present amount by n. Absent stays absent.
func (a Amount) Mul(n int) Amount {
	if !a.valid {
		return Amount{}
	}

	return Amount{value: a.value.Mul(decimal.NewFromInt(int64(n))), valid: true}
}

// Equal compares two amounts, treating two absent amounts as equal.
func (a Amount) Equal(b Amount) bool {
	if a.valid != b.valid {
		return false
	}

	return !a.valid || a.value.Equal(b.value)
}

func (a Amount) String() string {
	if !a.valid {
		return ""
	}

	return a.value.StringFixed(2)
}

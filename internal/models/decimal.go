package models

import (
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimal places an amount may carry (cents).
const MinorUnitPlaces int32 = 2

// Decimal is a custom type for decimal.Decimal
// the difference from `shopspring` is the json representation is without quotes
// for example the result of this type is 10 instead of "10"
//
// WARNING: if client side is using javascript and unmarshalling this type, the precision will be lost
// since javascript will unmarshal JSON numbers to IEEE 754 double-precision floating point numbers
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

func NewDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d}, nil
}

// MustNewDecimal is NewDecimal for literals known to be valid.
func MustNewDecimal(value string) Decimal {
	return Decimal{decimal.RequireFromString(value)}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// HasMinorUnitPrecision reports whether d is exact to the currency minor unit.
func (d Decimal) HasMinorUnitPrecision() bool {
	return d.Decimal.Equal(d.Decimal.Round(MinorUnitPlaces))
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{d.Decimal.Add(o.Decimal)}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{d.Decimal.Sub(o.Decimal)}
}

func (d Decimal) Neg() Decimal {
	return Decimal{d.Decimal.Neg()}
}

func (d Decimal) Equal(o Decimal) bool {
	return d.Decimal.Equal(o.Decimal)
}

func SumDecimals(values ...Decimal) Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Decimal)
	}
	return Decimal{total}
}

// Package amountwords renders currency amounts the way they are written on a check.
package amountwords

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ones = []string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tens   = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	scales = []string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion"}

	// unit names of ISO 4217 codes as written on a check
	unitNames = map[string]string{
		"USD": "Dollars",
		"CAD": "Canadian Dollars",
		"AUD": "Australian Dollars",
		"NZD": "New Zealand Dollars",
		"SGD": "Singapore Dollars",
		"HKD": "Hong Kong Dollars",
		"EUR": "Euros",
		"GBP": "Pounds Sterling",
		"CHF": "Swiss Francs",
		"JPY": "Yen",
		"IDR": "Rupiah",
		"INR": "Rupees",
		"MXN": "Pesos",
	}
)

// UnitName returns the plural unit word of an ISO 4217 code. Unknown codes are returned upper cased.
func UnitName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return unitNames["USD"]
	}
	if name, ok := unitNames[code]; ok {
		return name
	}
	return code
}

// ForCurrency renders amount with the unit word of the ISO 4217 code, e.g. "... and 56/100 Euros".
func ForCurrency(amount decimal.Decimal, code string) string {
	return Currency(amount, UnitName(code))
}

// Dollars renders amount as "One Thousand Two Hundred Thirty-Four and 56/100 Dollars".
// The amount is rounded to cents and its sign is ignored.
func Dollars(amount decimal.Decimal) string {
	return Currency(amount, "Dollars")
}

// Currency is Dollars with a caller supplied unit name.
func Currency(amount decimal.Decimal, unit string) string {
	amount = amount.Abs().Round(2)

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s and %02d/100 %s", Integer(uint64(whole.IntPart())), cents, unit)
}

// Integer spells n in long-form English, e.g. 1234 is "One Thousand Two Hundred Thirty-Four".
func Integer(n uint64) string {
	if n == 0 {
		return ones[0]
	}

	var groups []string
	for scale := 0; n > 0; scale++ {
		chunk := n % 1000
		n /= 1000
		if chunk == 0 {
			continue
		}
		words := hundreds(chunk)
		if scales[scale] != "" {
			words += " " + scales[scale]
		}
		groups = append(groups, words)
	}

	// groups were collected lowest scale first
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, " ")
}

// hundreds spells 1..999.
func hundreds(n uint64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, ones[n])
	case n%10 == 0:
		parts = append(parts, tens[n/10])
	default:
		parts = append(parts, tens[n/10]+"-"+ones[n%10])
	}
	return strings.Join(parts, " ")
}

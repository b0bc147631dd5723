// Package money converts the API's integer minor-unit amounts to decimals.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultExponent applies to currencies missing from the table.
const defaultExponent = 2

// ISO 4217 minor-unit exponents that differ from two.
var exponents = map[string]int32{
	"BHD": 3,
	"CLP": 0,
	"IQD": 3,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"PYG": 0,
	"TND": 3,
	"UGX": 0,
	"VND": 0,
	"XAF": 0,
	"XOF": 0,
}

// Exponent returns the number of minor-unit digits for a currency code.
func Exponent(currency string) int32 {
	if e, ok := exponents[strings.ToUpper(currency)]; ok {
		return e
	}
	return defaultExponent
}

// FromMinor converts an amount in minor units (pence for GBP) to major units.
func FromMinor(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -Exponent(currency))
}

// ToMinor converts a major-unit amount back to minor units, rounding half
// away from zero.
func ToMinor(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(Exponent(currency)).Round(0).IntPart()
}

// Format renders a minor-unit amount with its currency, e.g. "-12.50 GBP".
func Format(amount int64, currency string) string {
	d := FromMinor(amount, currency)
	s := d.StringFixed(Exponent(currency))
	if currency == "" {
		return s
	}
	return s + " " + strings.ToUpper(currency)
}

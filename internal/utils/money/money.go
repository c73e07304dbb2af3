// Package money provides the two rounding policies used for persisted
// financial values. All money fields are stored and serialized with exactly
// two fractional digits.
package money

import "github.com/shopspring/decimal"

// epsilon absorbs binary floating-point representation error in values that
// entered the system as float64 (e.g. 100.004999999... for 100.005).
var epsilon = decimal.New(1, -9) // 1e-9

// centFloor is the snap threshold for RoundDown: magnitudes below one cent
// collapse to exactly zero so balance fields never show near-zero noise.
var centFloor = decimal.New(1, -2) // 0.01

// RoundHalfUp rounds to two decimal places, half away from zero.
// Used for brokerage amounts and brokerage-in-home-currency.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return nudge(d).Round(2)
}

// RoundDown floors to two decimal places, snapping |d| < 0.01 to zero.
// Used for the balance brokerage field. The epsilon is always added (not
// signed) so the floor matches floor((d + 1e-9) * 100) / 100 exactly.
func RoundDown(d decimal.Decimal) decimal.Decimal {
	if d.Abs().LessThan(centFloor) {
		return decimal.Zero
	}
	return d.Add(epsilon).RoundFloor(2)
}

// Format serializes a money value with exactly two fractional digits,
// e.g. "1234.50", never "1234.5". This is the wire and storage format for
// every persisted money field.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// nudge shifts d by epsilon away from zero so that values sitting just under
// a rounding boundary due to float conversion land on the intended side.
func nudge(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return d.Sub(epsilon)
	}
	return d.Add(epsilon)
}

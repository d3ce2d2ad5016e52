package pricing

import "github.com/shopspring/decimal"

// The engine keeps full precision. Anything shown to a person or written to an
// export file is rounded here, half away from zero, so every surface agrees.

// RoundAmount rounds a currency amount to a whole unit.
func RoundAmount(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// RoundPercent rounds a percentage to two decimals.
func RoundPercent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatPercent renders a percentage with exactly two decimals.
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatAmount renders a currency amount without trailing zeros.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

package currency

import (
	"strconv"
	"strings"
)

// Symbol is the naira sign used on receipts and exports.
const Symbol = "₦"

// FormatNaira formats an amount in naira as a string like "₦2,550.00".
// Uses comma as thousands separator and always two decimal places.
func FormatNaira(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:] // includes the dot

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteString("-")
	}
	b.WriteString(Symbol)

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)

	return b.String()
}

// FormatPlain formats an amount like FormatNaira but without the currency
// symbol, e.g. "2,550.00". Used for CSV cells where the symbol is stripped.
func FormatPlain(amount float64) string {
	return strings.ReplaceAll(FormatNaira(amount), Symbol, "")
}

// FromKobo converts an integer amount in kobo to naira.
func FromKobo(kobo int64) float64 {
	return float64(kobo) / 100
}

// ToKobo converts a naira amount to kobo.
func ToKobo(naira float64) int64 {
	return int64(naira*100 + 0.5)
}

// Package money handles monetary amounts as int64 paisa (1/100 rupee).
// Amounts cross the wire as decimal rupees and are converted at the
// boundary; everything inside the service stays integral.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// ToPaisa converts a decimal rupee amount to paisa.
func ToPaisa(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

// ToRupees converts paisa back to a decimal rupee amount for wire payloads.
func ToRupees(paisa int64) float64 {
	return float64(paisa) / 100
}

// Format renders a paisa amount as a plain rupee figure: whole rupees
// without decimals ("1500"), fractional amounts with two ("1500.50").
func Format(paisa int64) string {
	if paisa%100 == 0 {
		return strconv.FormatInt(paisa/100, 10)
	}
	return fmt.Sprintf("%.2f", ToRupees(paisa))
}

// Rs renders a paisa amount with the currency label, e.g. "Rs 1500".
func Rs(paisa int64) string {
	return "Rs " + Format(paisa)
}

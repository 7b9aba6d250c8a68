package service

import (
	"math"

	"mortgage-engine/domain"
)

// paymentsPerYear returns the annual payment count for a frequency.
// Unknown frequencies default to monthly; boundary validation rejects
// them before they reach a calculation, so the default only guards
// library callers.
func paymentsPerYear(f domain.Frequency) float64 {
	switch f {
	case domain.Weekly:
		return 52
	case domain.Fortnightly:
		return 26
	case domain.Yearly:
		return 1
	case domain.Monthly:
		return 12
	default:
		return 12
	}
}

// ToAnnual converts a money stream to its annual figure.
func ToAnnual(m domain.MoneyFrequency) float64 {
	return m.Value * paymentsPerYear(m.Frequency)
}

// ToMonthly converts a money stream to its monthly figure.
func ToMonthly(m domain.MoneyFrequency) float64 {
	return ToAnnual(m) / 12
}

// roundTo2Decimals rounds a dollar figure to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

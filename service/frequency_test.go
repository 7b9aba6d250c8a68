package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-engine/domain"
)

func TestToAnnual(t *testing.T) {
	tests := []struct {
		money domain.MoneyFrequency
		want  float64
	}{
		{domain.MoneyFrequency{Value: 1000, Frequency: domain.Weekly}, 52000},
		{domain.MoneyFrequency{Value: 1000, Frequency: domain.Fortnightly}, 26000},
		{domain.MoneyFrequency{Value: 1000, Frequency: domain.Monthly}, 12000},
		{domain.MoneyFrequency{Value: 1000, Frequency: domain.Yearly}, 1000},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ToAnnual(tt.money), 1e-9, "frequency %s", tt.money.Frequency)
	}
}

func TestToMonthly(t *testing.T) {
	weekly := domain.MoneyFrequency{Value: 600, Frequency: domain.Weekly}
	assert.InDelta(t, 600*52.0/12.0, ToMonthly(weekly), 1e-9)

	yearly := domain.MoneyFrequency{Value: 120_000, Frequency: domain.Yearly}
	assert.InDelta(t, 10_000, ToMonthly(yearly), 1e-9)
}

// Monthly and annual views of the same stream must agree.
func TestFrequencyConversion_RoundTrip(t *testing.T) {
	for _, f := range []domain.Frequency{domain.Weekly, domain.Fortnightly, domain.Monthly, domain.Yearly} {
		m := domain.MoneyFrequency{Value: 1234.56, Frequency: f}
		assert.InDelta(t, ToAnnual(m), ToMonthly(m)*12, 1e-6, "frequency %s", f)
	}
}

// Unknown frequencies fall back to monthly rather than dropping money.
func TestToMonthly_UnknownFrequencyDefaultsToMonthly(t *testing.T) {
	m := domain.MoneyFrequency{Value: 500, Frequency: domain.Frequency("DAILY")}
	assert.InDelta(t, 500, ToMonthly(m), 1e-9)
}

package domain

// Frequency is the cadence of a recurring money amount.
type Frequency string

const (
	Weekly      Frequency = "WEEKLY"
	Fortnightly Frequency = "FORTNIGHTLY"
	Monthly     Frequency = "MONTHLY"
	Yearly      Frequency = "YEARLY"
)

// Valid reports whether f is one of the four supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Fortnightly, Monthly, Yearly:
		return true
	}
	return false
}

// MoneyFrequency is a non-negative amount paired with its cadence.
type MoneyFrequency struct {
	Value     float64   `json:"value"`
	Frequency Frequency `json:"frequency"`
}

// ZeroMonthly returns a zeroed monthly amount, the default for every
// income and liability field before the user fills it in.
func ZeroMonthly() MoneyFrequency {
	return MoneyFrequency{Value: 0, Frequency: Monthly}
}

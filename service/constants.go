package service

const (
	MaxPropertyPrice = 50_000_000.0 // sanity cap on a single purchase
	MaxLoanAmount    = 50_000_000.0
	MaxSavings       = 100_000_000.0

	MinTermYears = 1
	MaxTermYears = 30

	MinDependents = 0
	MaxDependents = 10

	// A money stream above this is almost certainly a data entry error.
	MaxMoneyValue = 10_000_000.0
)

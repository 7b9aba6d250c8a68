package domain

// ScenarioType categorizes a borrowing-power improvement lever.
type ScenarioType string

const (
	ScenarioSavings  ScenarioType = "SAVINGS"
	ScenarioExpenses ScenarioType = "EXPENSES"
	ScenarioCredit   ScenarioType = "CREDIT"
	ScenarioIncome   ScenarioType = "INCOME"
)

// BorrowingScenario describes one independent lever the household could
// pull and the resulting increase in borrowing power. Scenarios do not
// compound: each is computed from the unmodified baseline.
type BorrowingScenario struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ScenarioType `json:"type"`
	Increase    float64      `json:"increase"`
}

// MaxBorrowingResult is the outcome of the serviceability assessment.
// ServiceableLoanAmount is the portion of the required loan actually
// serviceable at the requested terms; it never exceeds MaxBorrowingPower.
type MaxBorrowingResult struct {
	MaxBorrowingPower     float64             `json:"maxBorrowingPower"`
	ServiceableLoanAmount float64             `json:"serviceableLoanAmount"`
	Scenarios             []BorrowingScenario `json:"scenarios"`
}

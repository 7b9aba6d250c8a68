package domain

// ApplicantType distinguishes single and joint applications.
type ApplicantType string

const (
	Individual ApplicantType = "INDIVIDUAL"
	Joint      ApplicantType = "JOINT"
)

// ApplicantFinancials holds the named income streams of one applicant.
type ApplicantFinancials struct {
	BaseSalary    MoneyFrequency `json:"baseSalary"`
	Supplementary MoneyFrequency `json:"supplementary"`
	Other         MoneyFrequency `json:"other"`
	Rental        MoneyFrequency `json:"rental"`
}

// Liabilities holds the household's recurring outgoings plus the total
// credit card limit (a flat amount, no frequency).
type Liabilities struct {
	Expenses        MoneyFrequency `json:"expenses"`
	OtherHomeLoans  MoneyFrequency `json:"otherHomeLoans"`
	OtherLoans      MoneyFrequency `json:"otherLoans"`
	CreditCardLimit float64        `json:"creditCardLimit"`
}

// Financials is the full household financial snapshot consumed by the
// borrowing engine. It is replaced wholesale on every edit; the engine
// never mutates it.
type Financials struct {
	ApplicantType ApplicantType        `json:"applicantType"`
	Dependents    int                  `json:"dependents"`
	Applicant1    ApplicantFinancials  `json:"applicant1"`
	Applicant2    *ApplicantFinancials `json:"applicant2,omitempty"`
	Liabilities   Liabilities          `json:"liabilities"`
}

// NewFinancials returns an individual application with every stream zeroed.
func NewFinancials() Financials {
	return Financials{
		ApplicantType: Individual,
		Applicant1:    newApplicantFinancials(),
		Liabilities: Liabilities{
			Expenses:       ZeroMonthly(),
			OtherHomeLoans: ZeroMonthly(),
			OtherLoans:     ZeroMonthly(),
		},
	}
}

func newApplicantFinancials() ApplicantFinancials {
	return ApplicantFinancials{
		BaseSalary:    ZeroMonthly(),
		Supplementary: ZeroMonthly(),
		Other:         ZeroMonthly(),
		Rental:        ZeroMonthly(),
	}
}

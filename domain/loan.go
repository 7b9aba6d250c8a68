package domain

// FeatureType is an optional loan feature preference.
type FeatureType string

const (
	FeatureRedraw FeatureType = "redraw"
	FeatureOffset FeatureType = "offset"
)

// LoanPreferences captures what the borrower asked for. Zero values mean
// "not requested": FixedTermYears 0 with RateFixed defaults to 1 year,
// InterestOnlyTermYears 0 means repayments are assessed as P&I.
type LoanPreferences struct {
	RateType              RateType      `json:"rateType"`
	RepaymentType         RepaymentType `json:"repaymentType"`
	FeatureType           FeatureType   `json:"featureType,omitempty"`
	TermYears             int           `json:"termYears"`
	FixedTermYears        int           `json:"fixedTermYears,omitempty"`
	InterestOnlyTermYears int           `json:"interestOnlyTermYears,omitempty"`
}

// LoanDeposit is the outcome of the deposit and cost calculation.
type LoanDeposit struct {
	StampDuty           float64 `json:"stampDuty"`
	UpfrontCosts        float64 `json:"upfrontCosts"`
	AvailableForDeposit float64 `json:"availableForDeposit"`
}

// LoanAmount is the loan required after the deposit is applied.
type LoanAmount struct {
	Required float64 `json:"required"`
}

// LoanProductDetails is a resolved primary-lender product.
type LoanProductDetails struct {
	ProductName          string  `json:"productName"`
	InterestRate         float64 `json:"interestRate"`
	MonthlyRepayment     float64 `json:"monthlyRepayment"`
	LoanAmount           float64 `json:"loanAmount"`
	UpfrontFee           float64 `json:"upfrontFee,omitempty"`
	UpfrontFeeAmount     float64 `json:"upfrontFeeAmount,omitempty"`
	RevertingRate        float64 `json:"revertingRate,omitempty"`
	RevertingRepayment   float64 `json:"revertingRepayment,omitempty"`
	RevertingProductName string  `json:"revertingProductName,omitempty"`
	Brand                string  `json:"brand"`
}

// OwnHomeProductDetails is the secondary-lender portion of a split loan.
type OwnHomeProductDetails struct {
	ProductName      string  `json:"productName"`
	InterestRate     float64 `json:"interestRate"`
	MonthlyRepayment float64 `json:"monthlyRepayment"`
	LoanAmount       float64 `json:"loanAmount"`
	TermYears        int     `json:"termYears"`
	UpfrontFee       float64 `json:"upfrontFee,omitempty"`
	UpfrontFeeAmount float64 `json:"upfrontFeeAmount,omitempty"`
	Brand            string  `json:"brand"`
}

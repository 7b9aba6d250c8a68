package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	"mortgage-engine/domain"
	"mortgage-engine/policy"
	"mortgage-engine/repository"
)

// ErrNoProductAvailable is returned when neither the requested product
// nor the documented fallback exists in the rate table. Not retryable
// without changed inputs.
var ErrNoProductAvailable = errors.New("no product available for the requested loan")

// ProductService resolves loan products against the rate table,
// computes repayments, and structures split loans above the primary
// lender's LVR ceiling.
type ProductService struct {
	rates  *repository.RateTable
	policy *policy.Policy
	repo   repository.CalculationRepository
}

// NewProductService creates a ProductService.
func NewProductService(rates *repository.RateTable, p *policy.Policy, repo repository.CalculationRepository) *ProductService {
	return &ProductService{rates: rates, policy: p, repo: repo}
}

// monthlyRepayment is the standard amortization formula. A zero rate
// degenerates to straight principal division.
func monthlyRepayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal / n
	}
	r := annualRate / 12
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// repayment picks the formula for the repayment type in force. Interest
// only applies only while an interest-only term is actually set.
func repayment(principal, annualRate float64, termYears int, repaymentType domain.RepaymentType, ioTermYears int) float64 {
	if repaymentType == domain.InterestOnly && ioTermYears > 0 {
		return principal * annualRate / 12
	}
	return monthlyRepayment(principal, annualRate, termYears)
}

func (s *ProductService) validateLoan(loanAmount, propertyValue float64, purpose domain.Purpose, prefs domain.LoanPreferences) error {
	if loanAmount <= 0 {
		return errors.New("loan amount must be positive")
	}
	if loanAmount > MaxLoanAmount {
		return fmt.Errorf("loan amount exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if propertyValue <= 0 {
		return errors.New("property value must be positive")
	}
	if purpose != domain.OwnerOccupied && purpose != domain.Investor {
		return fmt.Errorf("unknown loan purpose %q", purpose)
	}
	if prefs.TermYears < MinTermYears || prefs.TermYears > MaxTermYears {
		return fmt.Errorf("loan term must be between %d and %d years", MinTermYears, MaxTermYears)
	}
	if prefs.FixedTermYears != 0 && (prefs.FixedTermYears < 1 || prefs.FixedTermYears >= prefs.TermYears) {
		return errors.New("fixed term must be shorter than the loan term")
	}
	if prefs.InterestOnlyTermYears != 0 && (prefs.InterestOnlyTermYears < 1 || prefs.InterestOnlyTermYears >= prefs.TermYears) {
		return errors.New("interest-only term must be shorter than the loan term")
	}
	return nil
}

// SelectProduct resolves the product for a single (non-split) loan.
//
// The product decision is a fixed priority: the 80-85 tier always takes
// Tailored regardless of preferences, a fixed-rate request beats the
// offset feature, offset takes Power Up, everything else is Straight Up.
func (s *ProductService) SelectProduct(
	loanAmount float64,
	propertyValue float64,
	purpose domain.Purpose,
	prefs domain.LoanPreferences,
) (domain.LoanProductDetails, error) {

	if err := s.validateLoan(loanAmount, propertyValue, purpose, prefs); err != nil {
		return domain.LoanProductDetails{}, err
	}

	lvr := loanAmount / propertyValue
	tier := domain.FindLVRTier(lvr)

	productType := domain.ProductStraightUp
	rateType := domain.RateVariable
	fixedTerm := 0
	switch {
	case tier == domain.Tier80To85:
		productType = domain.ProductTailored
	case prefs.RateType == domain.RateFixed:
		productType = domain.ProductFixed
		rateType = domain.RateFixed
		fixedTerm = prefs.FixedTermYears
		if fixedTerm == 0 {
			fixedTerm = 1
		}
	case prefs.FeatureType == domain.FeatureOffset:
		productType = domain.ProductPowerUp
	}

	repaymentType := prefs.RepaymentType
	if repaymentType == "" {
		repaymentType = domain.PrincipalAndInterest
	}

	entry, ok := s.rates.FindProduct(productType, rateType, fixedTerm, purpose, repaymentType, tier)
	if !ok {
		// Documented fallback; logged so rate table gaps stay visible
		// instead of being masked by a plausible-looking product.
		log.Printf("Warning: no rate entry for %s/%s/%d/%s/%s/%s, falling back to Straight Up 70-80",
			productType, rateType, fixedTerm, purpose, repaymentType, tier)
		entry, ok = s.rates.FindProduct(domain.ProductStraightUp, domain.RateVariable, 0, purpose, domain.PrincipalAndInterest, domain.Tier70To80)
		if !ok {
			return domain.LoanProductDetails{}, ErrNoProductAvailable
		}
		// The substituted entry is quoted variable P&I, so the repayment
		// follows its terms rather than the requested ones.
		rateType = entry.RateType
		fixedTerm = 0
		repaymentType = entry.RepaymentType
	}

	details := domain.LoanProductDetails{
		ProductName:      entry.ProductName,
		InterestRate:     entry.Rate,
		MonthlyRepayment: roundTo2Decimals(repayment(loanAmount, entry.Rate, prefs.TermYears, repaymentType, prefs.InterestOnlyTermYears)),
		LoanAmount:       loanAmount,
		Brand:            "Athena",
	}

	if entry.UpfrontFee > 0 {
		details.UpfrontFee = entry.UpfrontFee
		details.UpfrontFeeAmount = roundTo2Decimals(entry.UpfrontFee * loanAmount)
	}

	interestOnly := repaymentType == domain.InterestOnly && prefs.InterestOnlyTermYears > 0
	if rateType == domain.RateFixed || interestOnly {
		introYears := fixedTerm
		if rateType != domain.RateFixed {
			introYears = prefs.InterestOnlyTermYears
		}
		remaining := prefs.TermYears - introYears
		if remaining < 1 {
			remaining = 1
		}
		revRate := s.rates.RevertingRate(purpose, tier)
		details.RevertingRate = revRate
		details.RevertingRepayment = roundTo2Decimals(repayment(loanAmount, revRate, remaining, repaymentType, prefs.InterestOnlyTermYears))
		details.RevertingProductName = s.revertingProductName(purpose, tier)
	}

	return details, nil
}

func (s *ProductService) revertingProductName(purpose domain.Purpose, tier domain.LVRTier) string {
	if entry, ok := s.rates.FindProduct(domain.ProductStraightUp, domain.RateVariable, 0, purpose, domain.PrincipalAndInterest, tier); ok {
		return entry.ProductName
	}
	if entry, ok := s.rates.FindProduct(domain.ProductTailored, domain.RateVariable, 0, purpose, domain.PrincipalAndInterest, tier); ok {
		return entry.ProductName
	}
	return "Variable"
}

// ResolveLoanProducts resolves the full loan structure. Above the split
// trigger LVR the primary loan is capped at the primary lender's LVR
// ceiling and the remainder goes to the secondary product; the two
// amounts always sum to the required amount.
func (s *ProductService) ResolveLoanProducts(
	requiredAmount float64,
	propertyValue float64,
	purpose domain.Purpose,
	prefs domain.LoanPreferences,
) (domain.LoanProductDetails, *domain.OwnHomeProductDetails, error) {

	if err := s.validateLoan(requiredAmount, propertyValue, purpose, prefs); err != nil {
		return domain.LoanProductDetails{}, nil, err
	}

	lvr := requiredAmount / propertyValue
	if lvr <= s.policy.Split.TriggerLVR {
		primary, err := s.SelectProduct(requiredAmount, propertyValue, purpose, prefs)
		if err != nil {
			return domain.LoanProductDetails{}, nil, err
		}
		s.save(requiredAmount, propertyValue, purpose, prefs, primary, nil)
		return primary, nil, nil
	}

	primaryAmount := propertyValue * s.policy.Split.MaxPrimaryLVR
	secondaryAmount := requiredAmount - primaryAmount

	primary, err := s.SelectProduct(primaryAmount, propertyValue, purpose, prefs)
	if err != nil {
		return domain.LoanProductDetails{}, nil, err
	}

	own := s.rates.OwnHome()
	ownDetails := &domain.OwnHomeProductDetails{
		ProductName:      own.ProductName,
		InterestRate:     own.Rate,
		MonthlyRepayment: roundTo2Decimals(monthlyRepayment(secondaryAmount, own.Rate, own.TermYears)),
		LoanAmount:       secondaryAmount,
		TermYears:        own.TermYears,
		Brand:            own.Brand,
	}
	if own.UpfrontFee > 0 {
		ownDetails.UpfrontFee = own.UpfrontFee
		ownDetails.UpfrontFeeAmount = roundTo2Decimals(own.UpfrontFee * secondaryAmount)
	}

	s.save(requiredAmount, propertyValue, purpose, prefs, primary, ownDetails)
	return primary, ownDetails, nil
}

func (s *ProductService) save(
	requiredAmount, propertyValue float64,
	purpose domain.Purpose,
	prefs domain.LoanPreferences,
	primary domain.LoanProductDetails,
	secondary *domain.OwnHomeProductDetails,
) {
	input := map[string]any{
		"requiredAmount": requiredAmount,
		"propertyValue":  propertyValue,
		"purpose":        purpose,
		"preferences":    prefs,
	}
	result := map[string]any{
		"product":        primary,
		"ownHomeProduct": secondary,
	}
	if err := s.repo.Save("loan_products", input, result); err != nil {
		log.Printf("Warning: failed to save product resolution: %v", err)
	}
}

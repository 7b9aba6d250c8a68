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

// DepositService derives stamp duty, upfront costs, deposit available
// and the required loan amount for a purchase.
type DepositService struct {
	policy *policy.Policy
	repo   repository.CalculationRepository
}

// NewDepositService creates a DepositService.
func NewDepositService(p *policy.Policy, repo repository.CalculationRepository) *DepositService {
	return &DepositService{policy: p, repo: repo}
}

// CalculateLoanDeposit computes purchase costs and the savings left over
// as deposit. AvailableForDeposit is floored at 0 when costs exceed
// savings; the floor is policy, not an error.
func (s *DepositService) CalculateLoanDeposit(
	propertyPrice float64,
	savings float64,
	state domain.State,
	purpose domain.Purpose,
	firstHomeBuyer bool,
) (domain.LoanDeposit, error) {

	if propertyPrice <= 0 {
		return domain.LoanDeposit{}, errors.New("property price must be positive")
	}
	if propertyPrice > MaxPropertyPrice {
		return domain.LoanDeposit{}, fmt.Errorf("property price exceeds the maximum of $%.2f", MaxPropertyPrice)
	}
	if savings < 0 {
		return domain.LoanDeposit{}, errors.New("savings must not be negative")
	}
	if savings > MaxSavings {
		return domain.LoanDeposit{}, fmt.Errorf("savings exceed the maximum of $%.2f", MaxSavings)
	}
	if !state.Valid() {
		return domain.LoanDeposit{}, fmt.Errorf("unknown state %q", state)
	}
	if purpose != domain.OwnerOccupied && purpose != domain.Investor {
		return domain.LoanDeposit{}, fmt.Errorf("unknown loan purpose %q", purpose)
	}

	stampDuty := StampDuty(propertyPrice, state, purpose, firstHomeBuyer)
	upfrontCosts := s.policy.UpfrontCosts.Base + s.policy.UpfrontCosts.PriceFraction*propertyPrice

	available := savings - stampDuty - upfrontCosts
	if available < 0 {
		available = 0
	}

	result := domain.LoanDeposit{
		StampDuty:           stampDuty,
		UpfrontCosts:        roundTo2Decimals(upfrontCosts),
		AvailableForDeposit: roundTo2Decimals(available),
	}

	input := map[string]any{
		"propertyPrice":  propertyPrice,
		"savings":        savings,
		"state":          state,
		"purpose":        purpose,
		"firstHomeBuyer": firstHomeBuyer,
	}
	if err := s.repo.Save("loan_deposit", input, result); err != nil {
		log.Printf("Warning: failed to save deposit calculation: %v", err)
	}

	return result, nil
}

// CalculateLoanAmount derives the loan required to settle the purchase.
// The postcode is carried for jurisdiction-specific adjustments supplied
// by external rule lookups; it does not change the arithmetic here.
func (s *DepositService) CalculateLoanAmount(
	propertyPrice float64,
	availableForDeposit float64,
	postcode string,
) (domain.LoanAmount, error) {

	if propertyPrice <= 0 {
		return domain.LoanAmount{}, errors.New("property price must be positive")
	}
	if availableForDeposit < 0 {
		return domain.LoanAmount{}, errors.New("available deposit must not be negative")
	}
	_ = postcode

	required := math.Max(propertyPrice-availableForDeposit, 0)
	return domain.LoanAmount{Required: roundTo2Decimals(required)}, nil
}

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"mortgage-engine/domain"
	"mortgage-engine/policy"
	"mortgage-engine/repository"
)

// BorrowingService estimates the largest loan a household can service
// under lender policy and the levers that would raise that ceiling.
// Every call recomputes from the full input snapshot; the cache only
// short-circuits identical snapshots.
type BorrowingService struct {
	policy *policy.Policy
	cache  repository.CacheRepository
	repo   repository.CalculationRepository
}

// NewBorrowingService creates a BorrowingService.
func NewBorrowingService(p *policy.Policy, cache repository.CacheRepository, repo repository.CalculationRepository) *BorrowingService {
	return &BorrowingService{policy: p, cache: cache, repo: repo}
}

// MaxBorrowingPower computes the serviceability ceiling and improvement
// scenarios.
//
// Both the financials and a resolved product are required inputs: with
// either missing the result is not yet computable and the call returns
// (nil, nil) so the caller can wait for upstream state, not an error.
// When the ceiling falls short of requiredAmount the result is still
// returned so the caller can present the shortfall.
func (s *BorrowingService) MaxBorrowingPower(
	financials *domain.Financials,
	product *domain.LoanProductDetails,
	prefs domain.LoanPreferences,
	requiredAmount float64,
) (*domain.MaxBorrowingResult, error) {

	if financials == nil || product == nil {
		return nil, nil
	}
	if err := validateFinancials(financials); err != nil {
		return nil, err
	}
	if requiredAmount < 0 {
		return nil, errors.New("required loan amount must not be negative")
	}
	if prefs.TermYears < MinTermYears || prefs.TermYears > MaxTermYears {
		return nil, fmt.Errorf("loan term must be between %d and %d years", MinTermYears, MaxTermYears)
	}

	key, err := cacheKey(financials, product, prefs, requiredAmount)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.MaxBorrowingResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	baseline := s.ceiling(*financials, product.InterestRate, prefs)

	result := &domain.MaxBorrowingResult{
		MaxBorrowingPower:     baseline,
		ServiceableLoanAmount: math.Min(requiredAmount, baseline),
		Scenarios:             s.scenarios(*financials, product.InterestRate, prefs, baseline),
	}

	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache borrowing result: %v", err)
			}
		}
	}

	input := map[string]any{
		"financials":     financials,
		"product":        product,
		"preferences":    prefs,
		"requiredAmount": requiredAmount,
	}
	if err := s.repo.Save("max_borrowing", input, result); err != nil {
		log.Printf("Warning: failed to save borrowing calculation: %v", err)
	}

	return result, nil
}

// ceiling runs the serviceability walk: shade income, normalize
// liabilities, apply the expense floor, then invert the stressed
// repayment back to a principal.
func (s *BorrowingService) ceiling(fin domain.Financials, quotedRate float64, prefs domain.LoanPreferences) float64 {
	income := s.shadedMonthlyIncome(fin.Applicant1)
	if fin.ApplicantType == domain.Joint && fin.Applicant2 != nil {
		income += s.shadedMonthlyIncome(*fin.Applicant2)
	}

	liabilities := ToMonthly(fin.Liabilities.OtherHomeLoans) +
		ToMonthly(fin.Liabilities.OtherLoans) +
		fin.Liabilities.CreditCardLimit*s.policy.Serviceability.CreditCardMonthlyFactor

	declared := ToMonthly(fin.Liabilities.Expenses)
	floor := s.policy.MonthlyExpenseFloor(fin.ApplicantType == domain.Joint, fin.Dependents)
	expenses := math.Max(declared, floor)

	budget := income - liabilities - expenses
	if budget <= 0 {
		return 0
	}

	// The prudential safeguard: affordability is tested at the quoted
	// rate plus the policy buffer, never at the quoted rate itself.
	stressed := quotedRate + s.policy.Serviceability.StressBuffer

	return roundTo2Decimals(s.maxPrincipalFor(budget, stressed, prefs))
}

func (s *BorrowingService) shadedMonthlyIncome(a domain.ApplicantFinancials) float64 {
	sh := s.policy.Serviceability.Shading
	return ToMonthly(a.BaseSalary)*sh.BaseSalary +
		ToMonthly(a.Supplementary)*sh.Supplementary +
		ToMonthly(a.Other)*sh.Other +
		ToMonthly(a.Rental)*sh.Rental
}

// maxPrincipalFor inverts the repayment formula: the largest principal
// whose stressed monthly repayment equals the budget.
func (s *BorrowingService) maxPrincipalFor(budget, annualRate float64, prefs domain.LoanPreferences) float64 {
	r := annualRate / 12
	interestOnly := prefs.RepaymentType == domain.InterestOnly && prefs.InterestOnlyTermYears > 0

	var principal float64
	switch {
	case interestOnly && r > 0:
		principal = budget / r
	case r == 0:
		principal = budget * float64(prefs.TermYears*12)
	default:
		n := float64(prefs.TermYears * 12)
		principal = budget * (1 - math.Pow(1+r, -n)) / r
	}

	if principal < 0 {
		return 0
	}
	return math.Min(principal, MaxLoanAmount)
}

// scenarios recomputes the ceiling once per lever, each from the
// unmodified baseline input. Levers never compound.
func (s *BorrowingService) scenarios(fin domain.Financials, quotedRate float64, prefs domain.LoanPreferences, baseline float64) []domain.BorrowingScenario {
	out := []domain.BorrowingScenario{}
	sc := s.policy.Scenarios

	// Savings do not move the serviceability ceiling, they add deposit:
	// every extra dollar saved is a dollar more of purchase power.
	if sc.SavingsDelta > 0 {
		out = append(out, domain.BorrowingScenario{
			Title:       fmt.Sprintf("Add $%.0f to your savings", sc.SavingsDelta),
			Description: "Extra savings go straight to your deposit, increasing what you can spend by the same amount.",
			Type:        domain.ScenarioSavings,
			Increase:    sc.SavingsDelta,
		})
	}

	declared := ToMonthly(fin.Liabilities.Expenses)
	if sc.ExpenseReductionMonthly > 0 && declared > 0 {
		adjusted := fin
		adjusted.Liabilities.Expenses = domain.MoneyFrequency{
			Value:     math.Max(declared-sc.ExpenseReductionMonthly, 0),
			Frequency: domain.Monthly,
		}
		if inc := s.ceiling(adjusted, quotedRate, prefs) - baseline; inc > 0 {
			out = append(out, domain.BorrowingScenario{
				Title:       fmt.Sprintf("Reduce monthly expenses by $%.0f", sc.ExpenseReductionMonthly),
				Description: "Lower living expenses free up repayment capacity, assessed against the lender's expense floor.",
				Type:        domain.ScenarioExpenses,
				Increase:    roundTo2Decimals(inc),
			})
		}
	}

	if fin.Liabilities.CreditCardLimit > 0 {
		adjusted := fin
		adjusted.Liabilities.CreditCardLimit = 0
		if inc := s.ceiling(adjusted, quotedRate, prefs) - baseline; inc > 0 {
			out = append(out, domain.BorrowingScenario{
				Title:       "Close your credit cards",
				Description: "A minimum repayment is assessed on your full credit limit even when the cards are unused.",
				Type:        domain.ScenarioCredit,
				Increase:    roundTo2Decimals(inc),
			})
		}
	}

	if sc.IncomeIncreaseMonthly > 0 {
		adjusted := fin
		adjusted.Applicant1.BaseSalary = domain.MoneyFrequency{
			Value:     ToMonthly(fin.Applicant1.BaseSalary) + sc.IncomeIncreaseMonthly,
			Frequency: domain.Monthly,
		}
		if inc := s.ceiling(adjusted, quotedRate, prefs) - baseline; inc > 0 {
			out = append(out, domain.BorrowingScenario{
				Title:       fmt.Sprintf("Increase your income by $%.0f a month", sc.IncomeIncreaseMonthly),
				Description: "Additional declared income raises the repayment budget after shading.",
				Type:        domain.ScenarioIncome,
				Increase:    roundTo2Decimals(inc),
			})
		}
	}

	return out
}

func validateFinancials(fin *domain.Financials) error {
	if fin.ApplicantType != domain.Individual && fin.ApplicantType != domain.Joint {
		return fmt.Errorf("unknown applicant type %q", fin.ApplicantType)
	}
	if fin.Dependents < MinDependents || fin.Dependents > MaxDependents {
		return fmt.Errorf("dependents must be between %d and %d", MinDependents, MaxDependents)
	}
	if fin.ApplicantType == domain.Joint && fin.Applicant2 == nil {
		return errors.New("joint applications require a second applicant")
	}
	if fin.ApplicantType == domain.Individual && fin.Applicant2 != nil {
		return errors.New("individual applications cannot have a second applicant")
	}

	if err := validateApplicant("applicant1", fin.Applicant1); err != nil {
		return err
	}
	if fin.Applicant2 != nil {
		if err := validateApplicant("applicant2", *fin.Applicant2); err != nil {
			return err
		}
	}

	streams := []struct {
		name string
		m    domain.MoneyFrequency
	}{
		{"expenses", fin.Liabilities.Expenses},
		{"other home loans", fin.Liabilities.OtherHomeLoans},
		{"other loans", fin.Liabilities.OtherLoans},
	}
	for _, s := range streams {
		if err := validateMoney(s.name, s.m); err != nil {
			return err
		}
	}
	if fin.Liabilities.CreditCardLimit < 0 {
		return errors.New("credit card limit must not be negative")
	}
	return nil
}

func validateApplicant(name string, a domain.ApplicantFinancials) error {
	streams := []struct {
		name string
		m    domain.MoneyFrequency
	}{
		{name + " base salary", a.BaseSalary},
		{name + " supplementary", a.Supplementary},
		{name + " other income", a.Other},
		{name + " rental income", a.Rental},
	}
	for _, s := range streams {
		if err := validateMoney(s.name, s.m); err != nil {
			return err
		}
	}
	return nil
}

func validateMoney(name string, m domain.MoneyFrequency) error {
	if m.Value < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	if m.Value > MaxMoneyValue {
		return fmt.Errorf("%s exceeds the maximum of $%.2f", name, MaxMoneyValue)
	}
	if !m.Frequency.Valid() {
		return fmt.Errorf("%s has unknown frequency %q", name, m.Frequency)
	}
	return nil
}

func cacheKey(
	financials *domain.Financials,
	product *domain.LoanProductDetails,
	prefs domain.LoanPreferences,
	requiredAmount float64,
) (string, error) {
	snapshot := struct {
		Financials     *domain.Financials         `json:"financials"`
		Product        *domain.LoanProductDetails `json:"product"`
		Preferences    domain.LoanPreferences     `json:"preferences"`
		RequiredAmount float64                    `json:"requiredAmount"`
	}{financials, product, prefs, requiredAmount}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "max_borrowing:" + hex.EncodeToString(sum[:]), nil
}

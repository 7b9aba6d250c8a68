// Package policy holds the lender policy constants used by the
// calculation services: serviceability buffers, income shading, living
// expense floors, scenario deltas, and split-loan limits. Values live in
// a YAML table so they can be updated without recompilation; a default
// table is embedded in the binary.
package policy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed policy.yaml
var defaultPolicyYAML []byte

// Shading holds the fraction of each income stream counted toward
// serviceable income.
type Shading struct {
	BaseSalary    float64 `yaml:"base_salary"`
	Supplementary float64 `yaml:"supplementary"`
	Other         float64 `yaml:"other"`
	Rental        float64 `yaml:"rental"`
}

// ExpenseFloor is the minimum monthly living expense assumption. The
// floor grows with applicant count and dependents; declared expenses
// below it are ignored.
type ExpenseFloor struct {
	SingleBase   float64 `yaml:"single_base"`
	JointBase    float64 `yaml:"joint_base"`
	PerDependent float64 `yaml:"per_dependent"`
}

// Serviceability groups the prudential assessment constants.
type Serviceability struct {
	StressBuffer            float64      `yaml:"stress_buffer"`
	CreditCardMonthlyFactor float64      `yaml:"credit_card_monthly_factor"`
	Shading                 Shading      `yaml:"shading"`
	ExpenseFloor            ExpenseFloor `yaml:"expense_floor"`
}

// Scenarios holds the fixed deltas applied when computing improvement
// scenarios, one per lever.
type Scenarios struct {
	SavingsDelta            float64 `yaml:"savings_delta"`
	ExpenseReductionMonthly float64 `yaml:"expense_reduction_monthly"`
	IncomeIncreaseMonthly   float64 `yaml:"income_increase_monthly"`
}

// UpfrontCosts is the purchase cost allowance on top of stamp duty.
type UpfrontCosts struct {
	Base          float64 `yaml:"base"`
	PriceFraction float64 `yaml:"price_fraction"`
}

// Split holds the LVR limits that trigger and shape a split loan.
type Split struct {
	MaxPrimaryLVR float64 `yaml:"max_primary_lvr"`
	TriggerLVR    float64 `yaml:"trigger_lvr"`
}

// Policy is the full lender policy table. Loaded once at startup and
// treated as immutable for the process lifetime.
type Policy struct {
	Serviceability Serviceability `yaml:"serviceability"`
	Scenarios      Scenarios      `yaml:"scenarios"`
	UpfrontCosts   UpfrontCosts   `yaml:"upfront_costs"`
	Split          Split          `yaml:"split"`
}

// Default returns the embedded policy table.
func Default() (*Policy, error) {
	return parse(defaultPolicyYAML)
}

// LoadFile reads a policy override from disk.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	if p.Serviceability.StressBuffer < 0 {
		return nil, fmt.Errorf("policy: stress buffer must not be negative")
	}
	if p.Split.TriggerLVR <= 0 || p.Split.MaxPrimaryLVR <= 0 {
		return nil, fmt.Errorf("policy: split LVR limits must be positive")
	}
	if p.Split.MaxPrimaryLVR > p.Split.TriggerLVR {
		return nil, fmt.Errorf("policy: primary LVR cap cannot exceed the split trigger")
	}
	return &p, nil
}

// MonthlyExpenseFloor returns the policy minimum monthly living expenses
// for the given household shape.
func (p *Policy) MonthlyExpenseFloor(joint bool, dependents int) float64 {
	base := p.Serviceability.ExpenseFloor.SingleBase
	if joint {
		base = p.Serviceability.ExpenseFloor.JointBase
	}
	return base + float64(dependents)*p.Serviceability.ExpenseFloor.PerDependent
}

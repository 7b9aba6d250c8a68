package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
	"mortgage-engine/policy"
)

type mockCalcRepo struct {
	SaveCalled bool
	SavedKinds []string
	ForceError bool
}

func (m *mockCalcRepo) Save(kind string, input, result any) error {
	m.SaveCalled = true
	m.SavedKinds = append(m.SavedKinds, kind)
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func testPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.Default()
	require.NoError(t, err)
	return p
}

func TestCalculateLoanDeposit_NSWScenario(t *testing.T) {
	repo := &mockCalcRepo{}
	svc := NewDepositService(testPolicy(t), repo)

	deposit, err := svc.CalculateLoanDeposit(1_200_000, 800_000, domain.NSW, domain.OwnerOccupied, false)
	require.NoError(t, err)

	assert.Greater(t, deposit.StampDuty, 0.0)
	assert.Greater(t, deposit.UpfrontCosts, 0.0)
	assert.Less(t, deposit.AvailableForDeposit, 800_000.0)
	assert.True(t, repo.SaveCalled)

	amount, err := svc.CalculateLoanAmount(1_200_000, deposit.AvailableForDeposit, "2000")
	require.NoError(t, err)
	assert.InDelta(t, 1_200_000-deposit.AvailableForDeposit, amount.Required, 0.01)
}

func TestCalculateLoanDeposit_FlooredAtZero(t *testing.T) {
	repo := &mockCalcRepo{}
	svc := NewDepositService(testPolicy(t), repo)

	// Savings do not even cover stamp duty; the deposit floors at 0
	// instead of going negative.
	deposit, err := svc.CalculateLoanDeposit(1_200_000, 20_000, domain.NSW, domain.OwnerOccupied, false)
	require.NoError(t, err)
	assert.Zero(t, deposit.AvailableForDeposit)
}

func TestCalculateLoanDeposit_InvalidInput(t *testing.T) {
	repo := &mockCalcRepo{}
	svc := NewDepositService(testPolicy(t), repo)

	_, err := svc.CalculateLoanDeposit(0, 100_000, domain.NSW, domain.OwnerOccupied, false)
	assert.Error(t, err)

	_, err = svc.CalculateLoanDeposit(500_000, -1, domain.NSW, domain.OwnerOccupied, false)
	assert.Error(t, err)

	_, err = svc.CalculateLoanDeposit(500_000, 100_000, domain.State("NZ"), domain.OwnerOccupied, false)
	assert.Error(t, err)

	_, err = svc.CalculateLoanDeposit(500_000, 100_000, domain.NSW, domain.Purpose("HOLIDAY"), false)
	assert.Error(t, err)

	assert.False(t, repo.SaveCalled)
}

func TestCalculateLoanAmount_ClampedAtZero(t *testing.T) {
	svc := NewDepositService(testPolicy(t), &mockCalcRepo{})

	amount, err := svc.CalculateLoanAmount(500_000, 600_000, "")
	require.NoError(t, err)
	assert.Zero(t, amount.Required)
}

func TestCalculateLoanDeposit_SaveFailureIsNotFatal(t *testing.T) {
	repo := &mockCalcRepo{ForceError: true}
	svc := NewDepositService(testPolicy(t), repo)

	_, err := svc.CalculateLoanDeposit(800_000, 200_000, domain.VIC, domain.OwnerOccupied, false)
	assert.NoError(t, err)
	assert.True(t, repo.SaveCalled)
}

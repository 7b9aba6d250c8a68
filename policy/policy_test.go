package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedTable(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Greater(t, p.Serviceability.StressBuffer, 0.0)
	assert.Greater(t, p.Serviceability.CreditCardMonthlyFactor, 0.0)
	assert.Greater(t, p.Serviceability.ExpenseFloor.SingleBase, 0.0)
	assert.Greater(t, p.Serviceability.ExpenseFloor.JointBase, p.Serviceability.ExpenseFloor.SingleBase)
	assert.InDelta(t, 0.80, p.Split.MaxPrimaryLVR, 1e-9)
	assert.InDelta(t, 0.85, p.Split.TriggerLVR, 1e-9)
}

func TestMonthlyExpenseFloor(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	single := p.MonthlyExpenseFloor(false, 0)
	joint := p.MonthlyExpenseFloor(true, 0)
	assert.Greater(t, joint, single)

	withKids := p.MonthlyExpenseFloor(false, 2)
	assert.InDelta(t, single+2*p.Serviceability.ExpenseFloor.PerDependent, withKids, 1e-9)
}

func TestParse_RejectsBadTables(t *testing.T) {
	_, err := parse([]byte("serviceability: ["))
	assert.Error(t, err)

	_, err = parse([]byte(`
serviceability:
  stress_buffer: 0.03
split:
  max_primary_lvr: 0.9
  trigger_lvr: 0.85
`))
	assert.Error(t, err)
}

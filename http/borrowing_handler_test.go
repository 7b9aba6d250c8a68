package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/policy"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func newBorrowingHandler(t *testing.T) *BorrowingHandler {
	t.Helper()
	pol, err := policy.Default()
	require.NoError(t, err)
	svc := service.NewBorrowingService(pol, repository.NewMockCache(), repository.NewCalculationRepositoryMemory())
	return NewBorrowingHandler(svc)
}

func TestMaxBorrowing_OK(t *testing.T) {
	handler := newBorrowingHandler(t)

	body := []byte(`{
		"financials": {
			"applicantType": "INDIVIDUAL",
			"dependents": 0,
			"applicant1": {
				"baseSalary": {"value": 10000, "frequency": "MONTHLY"},
				"supplementary": {"value": 0, "frequency": "MONTHLY"},
				"other": {"value": 0, "frequency": "MONTHLY"},
				"rental": {"value": 0, "frequency": "MONTHLY"}
			},
			"liabilities": {
				"expenses": {"value": 2000, "frequency": "MONTHLY"},
				"otherHomeLoans": {"value": 0, "frequency": "MONTHLY"},
				"otherLoans": {"value": 0, "frequency": "MONTHLY"},
				"creditCardLimit": 0
			}
		},
		"product": {"productName": "Straight Up", "interestRate": 0.0609, "brand": "Athena"},
		"preferences": {"rateType": "VARIABLE", "repaymentType": "PRINCIPAL_AND_INTEREST", "termYears": 30},
		"requiredAmount": 500000
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/max-borrowing", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.MaxBorrowing(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp borrowingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Greater(t, resp.Result.MaxBorrowingPower, 0.0)
}

// Missing prerequisites are not an error: the result is null until the
// upstream state arrives.
func TestMaxBorrowing_InsufficientInput(t *testing.T) {
	handler := newBorrowingHandler(t)

	body := []byte(`{"requiredAmount": 500000}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/max-borrowing", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.MaxBorrowing(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp borrowingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result)
}

func TestMaxBorrowing_ValidationFailure(t *testing.T) {
	handler := newBorrowingHandler(t)

	body := []byte(`{
		"financials": {"applicantType": "TRIO", "applicant1": {}},
		"product": {"productName": "Straight Up", "interestRate": 0.0609},
		"preferences": {"termYears": 30},
		"requiredAmount": 500000
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/max-borrowing", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.MaxBorrowing(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type DepositHandler struct {
	service  *service.DepositService
	validate *validator.Validate
}

func NewDepositHandler(service *service.DepositService) *DepositHandler {
	return &DepositHandler{
		service:  service,
		validate: validator.New(),
	}
}

type depositRequest struct {
	PropertyPrice  float64 `json:"propertyPrice" validate:"required,gt=0"`
	Savings        float64 `json:"savings" validate:"gte=0"`
	State          string  `json:"state" validate:"required,oneof=NSW VIC QLD SA WA TAS ACT NT"`
	Purpose        string  `json:"purpose" validate:"required,oneof=OWNER_OCCUPIED INVESTOR"`
	FirstHomeBuyer bool    `json:"firstHomeBuyer"`
	Postcode       string  `json:"postcode"`
}

type depositResponse struct {
	Deposit    domain.LoanDeposit `json:"deposit"`
	LoanAmount domain.LoanAmount  `json:"loanAmount"`
}

// CalculateDeposit computes purchase costs, the available deposit, and
// the loan required to settle.
func (h *DepositHandler) CalculateDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposit, err := h.service.CalculateLoanDeposit(
		req.PropertyPrice,
		req.Savings,
		domain.State(req.State),
		domain.Purpose(req.Purpose),
		req.FirstHomeBuyer,
	)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := h.service.CalculateLoanAmount(req.PropertyPrice, deposit.AvailableForDeposit, req.Postcode)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, depositResponse{
		Deposit:    deposit,
		LoanAmount: amount,
	})
}

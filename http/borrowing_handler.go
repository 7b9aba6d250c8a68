package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type BorrowingHandler struct {
	service  *service.BorrowingService
	validate *validator.Validate
}

func NewBorrowingHandler(service *service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{
		service:  service,
		validate: validator.New(),
	}
}

type borrowingRequest struct {
	Financials     *domain.Financials         `json:"financials"`
	Product        *domain.LoanProductDetails `json:"product"`
	Preferences    domain.LoanPreferences     `json:"preferences"`
	RequiredAmount float64                    `json:"requiredAmount" validate:"gte=0"`
}

type borrowingResponse struct {
	Result *domain.MaxBorrowingResult `json:"result"`
}

// MaxBorrowing computes the household's borrowing ceiling. When the
// financials or the resolved product are missing the result is null:
// not yet computable, not an error.
func (h *BorrowingHandler) MaxBorrowing(w http.ResponseWriter, r *http.Request) {
	var req borrowingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.MaxBorrowingPower(req.Financials, req.Product, req.Preferences, req.RequiredAmount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, borrowingResponse{Result: result})
}

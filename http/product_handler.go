package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type ProductHandler struct {
	service  *service.ProductService
	validate *validator.Validate
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

type productRequest struct {
	LoanAmount    float64                `json:"loanAmount" validate:"required,gt=0"`
	PropertyValue float64                `json:"propertyValue" validate:"required,gt=0"`
	Purpose       string                 `json:"purpose" validate:"required,oneof=OWNER_OCCUPIED INVESTOR"`
	Preferences   domain.LoanPreferences `json:"preferences"`
}

type productResponse struct {
	Product        domain.LoanProductDetails     `json:"product"`
	OwnHomeProduct *domain.OwnHomeProductDetails `json:"ownHomeProduct,omitempty"`
}

// ResolveProducts resolves the loan structure, splitting between the
// primary and secondary lender when the LVR requires it.
func (h *ProductHandler) ResolveProducts(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	primary, secondary, err := h.service.ResolveLoanProducts(
		req.LoanAmount,
		req.PropertyValue,
		domain.Purpose(req.Purpose),
		req.Preferences,
	)
	if err != nil {
		if errors.Is(err, service.ErrNoProductAvailable) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, productResponse{
		Product:        primary,
		OwnHomeProduct: secondary,
	})
}

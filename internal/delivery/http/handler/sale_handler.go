package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUsecase
	validator   *validator.CustomValidator
}

func NewSaleHandler(saleUsecase usecase.SaleUsecase, validator *validator.CustomValidator) *SaleHandler {
	return &SaleHandler{
		saleUsecase: saleUsecase,
		validator:   validator,
	}
}

// MakeSale handles sale recording
// @Summary Record a sale
// @Description Validate the cart, decrement stock and store the sale in one transaction
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param customerName path string true "Customer name"
// @Param grandPrice path number true "Declared grand total"
// @Param request body []dto.SaleItemRequest true "Cart items"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /make/sales/{customerName}/{grandPrice} [post]
func (h *SaleHandler) MakeSale(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	grandTotal, err := decimal.NewFromString(vars["grandPrice"])
	if err != nil {
		response.BadRequest(w, "Invalid grand price")
		return
	}

	var items []dto.SaleItemRequest
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	for i := range items {
		if err := h.validator.Validate(&items[i]); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	sale, err := h.saleUsecase.RecordSale(r.Context(), p.UserID, &dto.RecordSaleRequest{
		CustomerName: strings.TrimSpace(vars["customerName"]),
		GrandTotal:   grandTotal,
		Items:        items,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyCart),
			errors.Is(err, usecase.ErrInvalidCustomerName),
			errors.Is(err, usecase.ErrInvalidGrandTotal),
			errors.Is(err, usecase.ErrInvalidQuantity),
			errors.Is(err, usecase.ErrInvalidLineTotal),
			errors.Is(err, usecase.ErrProductNotFound),
			errors.Is(err, usecase.ErrInsufficientStock):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "An error occurred while creating the sale")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sale created successfully", sale)
}

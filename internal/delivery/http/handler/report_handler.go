package handler

import (
	"errors"
	"net/http"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"
)

type ReportHandler struct {
	reportUsecase    usecase.ReportUsecase
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewReportHandler(
	reportUsecase usecase.ReportUsecase,
	dashboardUsecase usecase.DashboardUsecase,
	validator *validator.CustomValidator,
) *ReportHandler {
	return &ReportHandler{
		reportUsecase:    reportUsecase,
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

// Dashboard handles the admin dashboard
// @Summary Admin dashboard
// @Description Inventory and sales aggregates with the latest products and sales
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Summary handles the sales line-item report
// @Summary Sales summary
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param customer_name query string false "Customer name contains"
// @Param product_name query string false "Product name contains"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date, inclusive (YYYY-MM-DD)"
// @Param page_number query int false "Page number" default(1)
// @Param page_size query int false "Rows per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sales/summary [get]
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.SaleSummaryQuery{
		CustomerName: q.Get("customer_name"),
		ProductName:  q.Get("product_name"),
		From:         q.Get("from"),
		To:           q.Get("to"),
		PageNumber:   queryInt(r, "page_number"),
		PageSize:     queryInt(r, "page_size"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	summary, err := h.reportUsecase.GetSummary(r.Context(), &query)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidDateRange):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get sales summary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sales summary retrieved successfully", summary)
}

// Visualization handles the sales chart data
// @Summary Sales totals per month, day and week
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /sales/visualization/data [get]
func (h *ReportHandler) Visualization(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportUsecase.GetVisualization(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sales data")
		return
	}

	response.Success(w, http.StatusOK, "Sales data retrieved successfully", data)
}

// Details handles a single sale
// @Summary Sale details
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales/details/{id} [get]
func (h *ReportHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	sale, err := h.reportUsecase.GetDetails(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSaleNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get sale details")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sale retrieved successfully", sale)
}

// Sales handles every sale with its line items
// @Summary Sales with products
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /sales [get]
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.reportUsecase.GetSalesWithItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sales")
		return
	}

	response.Success(w, http.StatusOK, "Sales retrieved successfully", sales)
}

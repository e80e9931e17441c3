package handler

import (
	"errors"
	"net/http"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// Create handles product creation
// @Summary Create a new product
// @Description Create a product with a unique name, positive price and positive stock
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /create/product [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	product, err := h.productUsecase.Create(r.Context(), p.UserID, &req)
	if err != nil {
		writeProductError(w, err, "Failed to create product")
		return
	}

	response.Success(w, http.StatusOK, "Product created successfully", product)
}

// Update handles product update
// @Summary Update a product
// @Description Replace name, price and stock of a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /update/product/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	product, err := h.productUsecase.Update(r.Context(), p.UserID, id, &req)
	if err != nil {
		writeProductError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// GetByID handles reading one product
// @Summary Get product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /product/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeProductError(w, err, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// List handles the paged product list
// @Summary List products
// @Description Filter by name, sort and paginate products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param name query string false "Name contains"
// @Param sort_by query string false "name, price, stock or created_at"
// @Param desc query bool false "Descending order"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /list/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ProductListQuery{
		Name:     r.URL.Query().Get("name"),
		SortBy:   r.URL.Query().Get("sort_by"),
		Desc:     queryBool(r, "desc"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	products, err := h.productUsecase.List(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// IndexItems handles the POS product picker
// @Summary Product picker items
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param name query string false "Name contains"
// @Param in_stock query bool false "Only products with stock"
// @Param limit query int false "Maximum items" default(50)
// @Success 200 {object} response.Response
// @Router /index/product/items [get]
func (h *ProductHandler) IndexItems(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.IndexItems(r.Context(), &dto.IndexProductQuery{
		Name:    r.URL.Query().Get("name"),
		InStock: queryBool(r, "in_stock"),
		Limit:   queryInt(r, "limit"),
	})
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// RecentItems handles the recently sold products list
// @Summary Recently sold products
// @Description Products of the recent sales index, newest first
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /index/recent/product/items [get]
func (h *ProductHandler) RecentItems(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.RecentItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get recent products")
		return
	}

	response.Success(w, http.StatusOK, "Recent products retrieved successfully", products)
}

func writeProductError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice),
		errors.Is(err, usecase.ErrInvalidProductStock):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrProductNameExists), errors.Is(err, usecase.ErrProductNameTaken):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

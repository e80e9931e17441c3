package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// SaleItemRequest is one cart line of POST /make/sales.
type SaleItemRequest struct {
	ProductID  int64           `json:"product_id" validate:"required,gt=0"`
	Quantity   int             `json:"quantity" validate:"gt=0"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type RecordSaleRequest struct {
	CustomerName string
	GrandTotal   decimal.Decimal
	Items        []SaleItemRequest
}

type SaleSummaryQuery struct {
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	From         string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To           string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	PageNumber   int    `json:"page_number"`
	PageSize     int    `json:"page_size"`
}

// Response DTOs

type SaleResponse struct {
	ID           int64              `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	CustomerName string             `json:"customer_name"`
	GrandTotal   decimal.Decimal    `json:"grand_total"`
	Items        []SaleItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

type SaleItemResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type SaleDetailResponse struct {
	ID           int64              `json:"id"`
	CustomerName string             `json:"customer_name"`
	GrandTotal   decimal.Decimal    `json:"grand_total"`
	ItemsTotal   decimal.Decimal    `json:"items_total"`
	Seller       *UserResponse      `json:"seller,omitempty"`
	Items        []SaleItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SaleListItemResponse is the short form used for recent sales.
type SaleListItemResponse struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	SellerName   string          `json:"seller_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type SaleWithProductsResponse struct {
	SaleID   int64              `json:"sale_id"`
	UserID   uuid.UUID          `json:"user_id"`
	Products []SaleItemResponse `json:"products"`
}

type SaleSummaryRowResponse struct {
	ID           int64           `json:"id"`
	SaleID       int64           `json:"sale_id"`
	CustomerName string          `json:"customer_name"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

type SaleSummaryResponse struct {
	Sales      []SaleSummaryRowResponse `json:"sales"`
	TotalSales int64                    `json:"total_sales"`
	TotalQuery int64                    `json:"total_query"`
	TotalPrice decimal.Decimal          `json:"total_price"`
}

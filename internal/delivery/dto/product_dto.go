package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"gt=0"`
}

type UpdateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"gt=0"`
}

type ProductListQuery struct {
	Name     string `json:"name"`
	SortBy   string `json:"sort_by" validate:"omitempty,oneof=name price stock created_at"`
	Desc     bool   `json:"desc"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type IndexProductQuery struct {
	Name    string `json:"name"`
	InStock bool   `json:"in_stock"`
	Limit   int    `json:"limit"`
}

// Response DTOs

type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products      []ProductResponse `json:"products"`
	TotalProducts int64             `json:"total_products"`
	TotalMatched  int64             `json:"total_matched"`
}

type ImportSummaryResponse struct {
	Total      int `json:"total"`
	Imported   int `json:"imported"`
	Updated    int `json:"updated"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

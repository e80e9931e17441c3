package entity

import "time"

// Product list sort columns
const (
	ProductSortName      = "name"
	ProductSortPrice     = "price"
	ProductSortStock     = "stock"
	ProductSortCreatedAt = "created_at"
)

// ProductFilter is a domain-level filter for querying products.
// Used by repository layer to avoid coupling with delivery DTOs.
type ProductFilter struct {
	Name        string // case-insensitive substring
	InStockOnly bool
	SortBy      string // one of the ProductSort* columns, defaults to created_at
	Descending  bool
	Limit       int
	Offset      int
}

// SaleItemFilter selects sale line items for the sales summary report.
type SaleItemFilter struct {
	CustomerName string // case-insensitive substring
	ProductName  string // case-insensitive substring
	From         *time.Time
	To           *time.Time // exclusive
	Limit        int
	Offset       int
}

package entity

import "github.com/shopspring/decimal"

// InventoryStats aggregates the product table for the admin dashboard.
type InventoryStats struct {
	TotalProducts       int64
	AvailableProducts   int64
	UnavailableProducts int64
	TotalItems          int64
	TotalPrice          decimal.Decimal
}

// SalesStats holds the count and grand total sum of a set of sales.
type SalesStats struct {
	TotalSales  int64
	TotalAmount decimal.Decimal
}

// SaleItemPage is one page of the sales summary report together with the
// totals over every matching row.
type SaleItemPage struct {
	Items      []SaleProduct
	TotalRows  int64
	TotalPrice decimal.Decimal
}

package dto

import "github.com/shopspring/decimal"

// BucketTotal is one labelled bucket of a time series. Buckets are emitted
// in calendar order.
type BucketTotal struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

type SalesVisualizationResponse struct {
	MonthlyTotals []BucketTotal `json:"monthly_totals"`
	DailyTotals   []BucketTotal `json:"daily_totals"`
	WeeklyTotals  []BucketTotal `json:"weekly_totals"`
}

type DashboardResponse struct {
	TotalProduct          int64                  `json:"total_product"`
	AvailableProduct      int64                  `json:"available_product"`
	UnavailableProduct    int64                  `json:"unavailable_product"`
	TotalProductItems     int64                  `json:"total_product_items"`
	TotalProductPrice     decimal.Decimal        `json:"total_product_price"`
	TotalProductSoldPrice decimal.Decimal        `json:"total_product_sold_price"`
	TotalUsers            int64                  `json:"total_users"`
	TotalSales            int64                  `json:"total_sales"`
	RecentProducts        []ProductResponse      `json:"recent_products"`
	RecentSales           []SaleListItemResponse `json:"recent_sales"`
}

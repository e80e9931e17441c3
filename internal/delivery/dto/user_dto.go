package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateSalesAgentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	// Password falls back to the configured default when empty.
	Password string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type UserProfileResponse struct {
	TotalSales int64           `json:"total_sales"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Name       string          `json:"name"`
	Username   string          `json:"username"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

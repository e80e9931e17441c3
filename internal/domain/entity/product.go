package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// InStock reports whether at least one unit can be sold.
func (p *Product) InStock() bool {
	return p.Stock >= 1
}

// Matches reports whether the product already carries the given price and stock.
func (p *Product) Matches(price decimal.Decimal, stock int) bool {
	return p.Price.Equal(price) && p.Stock == stock
}

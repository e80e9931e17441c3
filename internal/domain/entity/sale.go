package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a completed checkout. GrandTotal is the total declared by the
// caller; it is stored as given and not recomputed from the line items.
type Sale struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	GrandTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"grand_total"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`

	// Relationships
	User  *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []SaleProduct `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// ItemsTotal sums the line totals of the loaded items.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// SaleProduct is one line of a sale. It references the product by id only.
type SaleProduct struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID     int64           `gorm:"not null;index" json:"sale_id"`
	ProductID  int64           `gorm:"not null;index" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`

	// Relationships
	Sale    *Sale    `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (SaleProduct) TableName() string {
	return "sale_products"
}

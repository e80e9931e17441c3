package entity

import "time"

// RecentSale is one entry of the recent-sales index. Insertion order is the
// ascending ID.
type RecentSale struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID int64     `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (RecentSale) TableName() string {
	return "recent_sales"
}

package repository

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
)

// RecentSaleRepository persists the recent-sales index.
type RecentSaleRepository interface {
	Contains(ctx context.Context, productID int64) (bool, error)
	// Insert appends productID at the newest position; it is a no-op when the
	// product is already present.
	Insert(ctx context.Context, productID int64) error
	// Trim removes the oldest entries until at most maxSize remain and
	// returns how many were removed.
	Trim(ctx context.Context, maxSize int) (int64, error)
	Count(ctx context.Context) (int64, error)
	// List returns the entries newest first with Product loaded.
	List(ctx context.Context) ([]entity.RecentSale, error)
}

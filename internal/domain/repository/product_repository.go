package repository

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateBatch(ctx context.Context, products []entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	// FindByIDs loads every listed product in one read, keyed by id.
	// Ids without a row are absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error)
	FindLatest(ctx context.Context, limit int) ([]entity.Product, error)
	// DecrementStock subtracts amount only while stock stays non-negative and
	// returns the affected row count: 0 means the product is missing or the
	// stock no longer covers amount.
	DecrementStock(ctx context.Context, id int64, amount int) (int64, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*entity.InventoryStats, error)
}

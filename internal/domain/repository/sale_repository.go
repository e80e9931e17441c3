package repository

import (
	"context"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/google/uuid"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItems(ctx context.Context, items []entity.SaleProduct) error
	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
	FindAllWithItems(ctx context.Context) ([]entity.Sale, error)
	FindLatest(ctx context.Context, limit int) ([]entity.Sale, error)
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	FindItems(ctx context.Context, filter entity.SaleItemFilter) (*entity.SaleItemPage, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*entity.SalesStats, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (*entity.SalesStats, error)
}

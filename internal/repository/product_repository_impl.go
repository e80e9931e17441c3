package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	entity.ProductSortName:      "name",
	entity.ProductSortPrice:     "price",
	entity.ProductSortStock:     "stock",
	entity.ProductSortCreatedAt: "created_at",
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return translateError(conn(ctx, r.db).Create(product).Error)
}

func (r *productRepository) CreateBatch(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	return translateError(conn(ctx, r.db).CreateInBatches(products, 100).Error)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return translateError(conn(ctx, r.db).Save(product).Error)
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).Where("name = ?", name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	result := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var products []entity.Product
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		result[products[i].ID] = &products[i]
	}
	return result, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	if err := conn(ctx, r.db).Model(&entity.Product{}).Scopes(productFilterScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := " ASC"
	if filter.Descending {
		direction = " DESC"
	}

	query := conn(ctx, r.db).Scopes(productFilterScope(filter)).Order(column + direction).Order("id" + direction)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FindLatest(ctx context.Context, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id int64, amount int) (int64, error) {
	result := conn(ctx, r.db).Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", id, amount).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", amount),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Product{}).Count(&total).Error
	return total, err
}

func (r *productRepository) Stats(ctx context.Context) (*entity.InventoryStats, error) {
	var stats entity.InventoryStats
	err := conn(ctx, r.db).Model(&entity.Product{}).
		Select(`
			COUNT(*) AS total_products,
			COUNT(*) FILTER (WHERE stock >= 1) AS available_products,
			COUNT(*) FILTER (WHERE stock <= 0) AS unavailable_products,
			COALESCE(SUM(stock), 0) AS total_items,
			COALESCE(SUM(price), 0) AS total_price
		`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func productFilterScope(filter entity.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Name != "" {
			db = db.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.InStockOnly {
			db = db.Where("stock >= ?", 1)
		}
		return db
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(sale).Error
}

func (r *saleRepository) CreateItems(ctx context.Context, items []entity.SaleProduct) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db).Omit(clause.Associations).Create(&items).Error
}

func (r *saleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var sale entity.Sale
	err := conn(ctx, r.db).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sale_products.id ASC") }).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) FindAllWithItems(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := conn(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sale_products.id ASC") }).
		Preload("Items.Product").
		Order("id DESC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) FindLatest(ctx context.Context, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := conn(ctx, r.db).Preload("User").Order("created_at DESC").Order("id DESC").Limit(limit).Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := conn(ctx, r.db).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) FindItems(ctx context.Context, filter entity.SaleItemFilter) (*entity.SaleItemPage, error) {
	page := &entity.SaleItemPage{}
	scope := saleItemFilterScope(filter)

	if err := conn(ctx, r.db).Model(&entity.SaleProduct{}).Scopes(scope).Count(&page.TotalRows).Error; err != nil {
		return nil, err
	}

	var sum struct {
		Total decimal.Decimal
	}
	err := conn(ctx, r.db).Model(&entity.SaleProduct{}).Scopes(scope).
		Select("COALESCE(SUM(sale_products.total_price), 0) AS total").
		Scan(&sum).Error
	if err != nil {
		return nil, err
	}
	page.TotalPrice = sum.Total

	query := conn(ctx, r.db).Model(&entity.SaleProduct{}).Scopes(scope).
		Preload("Sale").
		Preload("Product").
		Order("sale_products.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&page.Items).Error; err != nil {
		return nil, err
	}

	return page, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Sale{}).Count(&total).Error
	return total, err
}

func (r *saleRepository) Stats(ctx context.Context) (*entity.SalesStats, error) {
	return r.stats(conn(ctx, r.db).Model(&entity.Sale{}))
}

func (r *saleRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*entity.SalesStats, error) {
	return r.stats(conn(ctx, r.db).Model(&entity.Sale{}).Where("user_id = ?", userID))
}

func (r *saleRepository) stats(query *gorm.DB) (*entity.SalesStats, error) {
	var stats entity.SalesStats
	err := query.
		Select("COUNT(*) AS total_sales, COALESCE(SUM(grand_total), 0) AS total_amount").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func saleItemFilterScope(filter entity.SaleItemFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Joins("JOIN sales ON sales.id = sale_products.sale_id").
			Joins("JOIN products ON products.id = sale_products.product_id")
		if filter.CustomerName != "" {
			db = db.Where("sales.customer_name ILIKE ?", "%"+filter.CustomerName+"%")
		}
		if filter.ProductName != "" {
			db = db.Where("products.name ILIKE ?", "%"+filter.ProductName+"%")
		}
		if filter.From != nil {
			db = db.Where("sales.created_at >= ?", *filter.From)
		}
		if filter.To != nil {
			db = db.Where("sales.created_at < ?", *filter.To)
		}
		return db
	}
}

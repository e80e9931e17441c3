package repository

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type recentSaleRepository struct {
	db *gorm.DB
}

func NewRecentSaleRepository(db *gorm.DB) domainRepo.RecentSaleRepository {
	return &recentSaleRepository{db: db}
}

func (r *recentSaleRepository) Contains(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.RecentSale{}).Where("product_id = ?", productID).Count(&count).Error
	return count > 0, err
}

func (r *recentSaleRepository) Insert(ctx context.Context, productID int64) error {
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "product_id"}}, DoNothing: true}).
		Create(&entity.RecentSale{ProductID: productID}).Error
}

// Trim keeps the maxSize highest ids and deletes the rest.
func (r *recentSaleRepository) Trim(ctx context.Context, maxSize int) (int64, error) {
	if maxSize <= 0 {
		// The postgres dialect drops LIMIT 0, so clear the index directly.
		result := conn(ctx, r.db).Where("1 = 1").Delete(&entity.RecentSale{})
		return result.RowsAffected, result.Error
	}
	keep := conn(ctx, r.db).Model(&entity.RecentSale{}).Select("id").Order("id DESC").Limit(maxSize)
	result := conn(ctx, r.db).Where("id NOT IN (?)", keep).Delete(&entity.RecentSale{})
	return result.RowsAffected, result.Error
}

func (r *recentSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.RecentSale{}).Count(&count).Error
	return count, err
}

func (r *recentSaleRepository) List(ctx context.Context) ([]entity.RecentSale, error) {
	var entries []entity.RecentSale
	err := conn(ctx, r.db).Preload("Product").Order("id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

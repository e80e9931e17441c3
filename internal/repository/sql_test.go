package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm builds.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface      { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements)
	return r.statements[len(r.statements)-1]
}

// dryRunDB builds statements against the postgres dialect without
// connecting.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=pos dbname=pos sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestDecrementStockIsGuarded(t *testing.T) {
	db, rec := dryRunDB(t)

	_, err := NewProductRepository(db).DecrementStock(context.Background(), 7, 3)
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `UPDATE "products" SET`)
	assert.Contains(t, sql, `"stock"=stock - 3`)
	assert.Contains(t, sql, "id = 7")
	assert.Contains(t, sql, "stock >= 3")
}

func TestTrimKeepsNewestEntries(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewRecentSaleRepository(db)

	_, err := repo.Trim(context.Background(), 10)
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `DELETE FROM "recent_sales"`)
	assert.Contains(t, sql, "id NOT IN (SELECT")
	assert.Contains(t, sql, "ORDER BY id DESC LIMIT 10)")

	_, err = repo.Trim(context.Background(), 0)
	require.NoError(t, err)

	sql = rec.last(t)
	assert.Contains(t, sql, `DELETE FROM "recent_sales" WHERE 1 = 1`)
	assert.NotContains(t, sql, "NOT IN")
}

func TestRecentInsertIgnoresPresentProduct(t *testing.T) {
	db, rec := dryRunDB(t)

	require.NoError(t, NewRecentSaleRepository(db).Insert(context.Background(), 5))

	sql := rec.last(t)
	assert.Contains(t, sql, `INSERT INTO "recent_sales"`)
	assert.Contains(t, sql, `ON CONFLICT ("product_id") DO NOTHING`)
}

func TestSaleItemFilterJoinsAndFilters(t *testing.T) {
	db, rec := dryRunDB(t)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	var n int64
	err := db.Model(&entity.SaleProduct{}).
		Scopes(saleItemFilterScope(entity.SaleItemFilter{
			CustomerName: "ali",
			ProductName:  "tea",
			From:         &from,
			To:           &to,
		})).
		Count(&n).Error
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, "JOIN sales ON sales.id = sale_products.sale_id")
	assert.Contains(t, sql, "JOIN products ON products.id = sale_products.product_id")
	assert.Contains(t, sql, "sales.customer_name ILIKE '%ali%'")
	assert.Contains(t, sql, "products.name ILIKE '%tea%'")
	assert.Contains(t, sql, "sales.created_at >= '2024-03-01")
	assert.Contains(t, sql, "sales.created_at < '2024-03-08")
}

func TestSaleItemFilterWithoutCriteriaOnlyJoins(t *testing.T) {
	db, rec := dryRunDB(t)

	var n int64
	err := db.Model(&entity.SaleProduct{}).Scopes(saleItemFilterScope(entity.SaleItemFilter{})).Count(&n).Error
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, "JOIN products")
	assert.NotContains(t, sql, "WHERE")
}

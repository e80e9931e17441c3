package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) reportUsecase(now time.Time) *reportUsecase {
	uc := NewReportUsecase(e.log, e.sales).(*reportUsecase)
	uc.now = func() time.Time { return now }
	return uc
}

func (e *testEnv) seedSale(t *testing.T, customer, grandTotal string, at time.Time, items ...entity.SaleProduct) *entity.Sale {
	t.Helper()
	ctx := context.Background()
	sale := &entity.Sale{UserID: testUserID, CustomerName: customer, GrandTotal: money(grandTotal), CreatedAt: at}
	require.NoError(t, e.sales.Create(ctx, sale))
	for i := range items {
		items[i].SaleID = sale.ID
	}
	if len(items) > 0 {
		require.NoError(t, e.sales.CreateItems(ctx, items))
	}
	return sale
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func findBucket(t *testing.T, buckets []dto.BucketTotal, label string) dto.BucketTotal {
	t.Helper()
	for _, b := range buckets {
		if b.Label == label {
			return b
		}
	}
	t.Fatalf("bucket %q not found", label)
	return dto.BucketTotal{}
}

func TestGetVisualization_BucketsAreOrderedAndComplete(t *testing.T) {
	env := newTestEnv()
	env.seedSale(t, "Old", "100.00", day(2023, time.December, 31))
	env.seedSale(t, "Jan", "10.00", day(2024, time.January, 10))
	env.seedSale(t, "W1", "5.00", day(2024, time.March, 1))
	env.seedSale(t, "W2", "7.00", day(2024, time.March, 8))
	env.seedSale(t, "W5", "3.00", day(2024, time.March, 29))

	uc := env.reportUsecase(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	viz, err := uc.GetVisualization(context.Background())
	require.NoError(t, err)

	require.Len(t, viz.MonthlyTotals, 12)
	assert.Equal(t, "January", viz.MonthlyTotals[0].Label)
	assert.Equal(t, "December", viz.MonthlyTotals[11].Label)
	assert.True(t, viz.MonthlyTotals[0].Total.Equal(money("10")))
	assert.True(t, viz.MonthlyTotals[1].Total.IsZero())
	assert.True(t, viz.MonthlyTotals[2].Total.Equal(money("15")))
	assert.True(t, viz.MonthlyTotals[11].Total.IsZero())

	require.Len(t, viz.DailyTotals, 31)
	assert.Equal(t, "1", viz.DailyTotals[0].Label)
	assert.Equal(t, "31", viz.DailyTotals[30].Label)
	assert.True(t, findBucket(t, viz.DailyTotals, "8").Total.Equal(money("7")))
	assert.True(t, findBucket(t, viz.DailyTotals, "2").Total.IsZero())

	require.Len(t, viz.WeeklyTotals, 5)
	assert.Equal(t, "Week 1", viz.WeeklyTotals[0].Label)
	assert.True(t, viz.WeeklyTotals[0].Total.Equal(money("5")))
	assert.True(t, viz.WeeklyTotals[1].Total.Equal(money("7")))
	assert.True(t, viz.WeeklyTotals[2].Total.IsZero())
	assert.True(t, viz.WeeklyTotals[4].Total.Equal(money("3")))
}

func TestGetVisualization_EmptyStillHasEveryBucket(t *testing.T) {
	env := newTestEnv()
	uc := env.reportUsecase(time.Date(2023, time.February, 2, 0, 0, 0, 0, time.UTC))

	viz, err := uc.GetVisualization(context.Background())
	require.NoError(t, err)
	assert.Len(t, viz.MonthlyTotals, 12)
	assert.Len(t, viz.DailyTotals, 28)
	assert.Len(t, viz.WeeklyTotals, 5)
}

func TestWeekOfMonth(t *testing.T) {
	assert.Equal(t, 1, weekOfMonth(1))
	assert.Equal(t, 1, weekOfMonth(7))
	assert.Equal(t, 2, weekOfMonth(8))
	assert.Equal(t, 4, weekOfMonth(28))
	assert.Equal(t, 5, weekOfMonth(31))
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	tea := env.seedProduct(t, "Tea", "2.00", 50)
	cake := env.seedProduct(t, "Cake", "6.00", 50)
	env.seedSale(t, "Alice", "10.00", day(2024, time.March, 10),
		entity.SaleProduct{ProductID: tea.ID, Quantity: 2, TotalPrice: money("4.00")},
		entity.SaleProduct{ProductID: cake.ID, Quantity: 1, TotalPrice: money("6.00")})
	env.seedSale(t, "Bob", "2.00", day(2024, time.March, 12),
		entity.SaleProduct{ProductID: tea.ID, Quantity: 1, TotalPrice: money("2.00")})

	uc := env.reportUsecase(day(2024, time.March, 20))

	all, err := uc.GetSummary(ctx, &dto.SaleSummaryQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.TotalSales)
	assert.EqualValues(t, 3, all.TotalQuery)
	assert.True(t, all.TotalPrice.Equal(money("12.00")))

	teaOnly, err := uc.GetSummary(ctx, &dto.SaleSummaryQuery{ProductName: "TEA", PageSize: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, teaOnly.TotalQuery)
	assert.True(t, teaOnly.TotalPrice.Equal(money("6.00")))
	require.Len(t, teaOnly.Sales, 1)
	assert.Equal(t, "Bob", teaOnly.Sales[0].CustomerName)

	sameDay, err := uc.GetSummary(ctx, &dto.SaleSummaryQuery{From: "2024-03-10", To: "2024-03-10"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, sameDay.TotalQuery)
	for _, row := range sameDay.Sales {
		assert.Equal(t, "Alice", row.CustomerName)
	}

	_, err = uc.GetSummary(ctx, &dto.SaleSummaryQuery{From: "2024-03-12", To: "2024-03-10"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.GetSummary(ctx, &dto.SaleSummaryQuery{From: "10/03/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetDetailsAndSalesWithItems(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	seller := env.seedUser(t, "Sam Seller", "sam", entity.RoleIDSales)
	tea := env.seedProduct(t, "Tea", "2.00", 50)
	sale := &entity.Sale{UserID: seller.ID, CustomerName: "Alice", GrandTotal: money("4.00")}
	require.NoError(t, env.sales.Create(ctx, sale))
	require.NoError(t, env.sales.CreateItems(ctx, []entity.SaleProduct{
		{SaleID: sale.ID, ProductID: tea.ID, Quantity: 2, TotalPrice: money("4.00")},
	}))

	uc := env.reportUsecase(time.Now())

	details, err := uc.GetDetails(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Seller)
	assert.Equal(t, "Sam Seller", details.Seller.Name)
	assert.Equal(t, "sales", details.Seller.Role)
	require.Len(t, details.Items, 1)
	assert.Equal(t, "Tea", details.Items[0].ProductName)
	assert.True(t, details.ItemsTotal.Equal(money("4.00")))

	_, err = uc.GetDetails(ctx, 404)
	assert.ErrorIs(t, err, ErrSaleNotFound)

	sales, err := uc.GetSalesWithItems(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, seller.ID, sales[0].UserID)
	require.Len(t, sales[0].Products, 1)
	assert.Equal(t, 2, sales[0].Products[0].Quantity)
}

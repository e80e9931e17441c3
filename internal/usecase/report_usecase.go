package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/converter"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// weeksPerMonth is the number of week buckets; days 29 to 31 fall in week 5.
const weeksPerMonth = 5

var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("from date must not be after to date")
)

type ReportUsecase interface {
	GetSummary(ctx context.Context, query *dto.SaleSummaryQuery) (*dto.SaleSummaryResponse, error)
	GetVisualization(ctx context.Context) (*dto.SalesVisualizationResponse, error)
	GetDetails(ctx context.Context, id int64) (*dto.SaleDetailResponse, error)
	GetSalesWithItems(ctx context.Context) ([]dto.SaleWithProductsResponse, error)
}

type reportUsecase struct {
	log      *logrus.Logger
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewReportUsecase(log *logrus.Logger, saleRepo repository.SaleRepository) ReportUsecase {
	return &reportUsecase{
		log:      log,
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

func (u *reportUsecase) GetSummary(ctx context.Context, query *dto.SaleSummaryQuery) (*dto.SaleSummaryResponse, error) {
	page, pageSize := normalizePage(query.PageNumber, query.PageSize)
	loc := u.now().Location()

	filter := entity.SaleItemFilter{
		CustomerName: strings.TrimSpace(query.CustomerName),
		ProductName:  strings.TrimSpace(query.ProductName),
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	}

	if query.From != "" {
		from, err := time.ParseInLocation(dateLayout, query.From, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: from=%q", ErrInvalidDate, query.From)
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.ParseInLocation(dateLayout, query.To, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: to=%q", ErrInvalidDate, query.To)
		}
		// The to date is inclusive.
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, ErrInvalidDateRange
	}

	items, err := u.saleRepo.FindItems(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find sale items: %+v", err)
		return nil, err
	}

	totalSales, err := u.saleRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count sales: %+v", err)
		return nil, err
	}

	return &dto.SaleSummaryResponse{
		Sales:      converter.SaleItemsToSummaryRows(items.Items),
		TotalSales: totalSales,
		TotalQuery: items.TotalRows,
		TotalPrice: items.TotalPrice,
	}, nil
}

// GetVisualization totals sale grand totals per month of the current year
// and per day and week of the current month.
func (u *reportUsecase) GetVisualization(ctx context.Context) (*dto.SalesVisualizationResponse, error) {
	now := u.now()
	loc := now.Location()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)

	sales, err := u.saleRepo.FindCreatedBetween(ctx, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		u.log.Warnf("Failed to find sales of %d: %+v", now.Year(), err)
		return nil, err
	}

	monthly := newBucketSeries()
	for m := time.January; m <= time.December; m++ {
		monthly.seed(m.String())
	}

	daily := newBucketSeries()
	for d := 1; d <= nextMonth.AddDate(0, 0, -1).Day(); d++ {
		daily.seed(strconv.Itoa(d))
	}

	weekly := newBucketSeries()
	for w := 1; w <= weeksPerMonth; w++ {
		weekly.seed(weekLabel(w))
	}

	for _, sale := range sales {
		created := sale.CreatedAt.In(loc)
		monthly.add(created.Month().String(), sale.GrandTotal)

		if created.Before(monthStart) || !created.Before(nextMonth) {
			continue
		}
		daily.add(strconv.Itoa(created.Day()), sale.GrandTotal)
		weekly.add(weekLabel(weekOfMonth(created.Day())), sale.GrandTotal)
	}

	return &dto.SalesVisualizationResponse{
		MonthlyTotals: monthly.totals(),
		DailyTotals:   daily.totals(),
		WeeklyTotals:  weekly.totals(),
	}, nil
}

func (u *reportUsecase) GetDetails(ctx context.Context, id int64) (*dto.SaleDetailResponse, error) {
	sale, err := u.saleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find sale %d: %+v", id, err)
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: id %d", ErrSaleNotFound, id)
	}

	return converter.SaleToDetailResponse(sale), nil
}

func (u *reportUsecase) GetSalesWithItems(ctx context.Context) ([]dto.SaleWithProductsResponse, error) {
	sales, err := u.saleRepo.FindAllWithItems(ctx)
	if err != nil {
		u.log.Warnf("Failed to find sales with items: %+v", err)
		return nil, err
	}

	return converter.SalesToWithProductsResponses(sales), nil
}

// weekOfMonth maps a day of month to its week: days 1-7 are week 1.
func weekOfMonth(day int) int {
	return (day-1)/7 + 1
}

func weekLabel(week int) string {
	return "Week " + strconv.Itoa(week)
}

// bucketSeries is an ordered label to total mapping. Every label is seeded
// before accumulation so empty buckets still appear.
type bucketSeries struct {
	labels []string
	sums   map[string]decimal.Decimal
}

func newBucketSeries() *bucketSeries {
	return &bucketSeries{sums: make(map[string]decimal.Decimal)}
}

func (b *bucketSeries) seed(label string) {
	if _, ok := b.sums[label]; ok {
		return
	}
	b.labels = append(b.labels, label)
	b.sums[label] = decimal.Zero
}

// add ignores labels that were not seeded.
func (b *bucketSeries) add(label string, amount decimal.Decimal) {
	sum, ok := b.sums[label]
	if !ok {
		return
	}
	b.sums[label] = sum.Add(amount)
}

func (b *bucketSeries) totals() []dto.BucketTotal {
	out := make([]dto.BucketTotal, len(b.labels))
	for i, label := range b.labels {
		out[i] = dto.BucketTotal{Label: label, Total: b.sums[label]}
	}
	return out
}

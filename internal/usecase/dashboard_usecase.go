package usecase

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/converter"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const dashboardRecentLimit = 10

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	userRepo    repository.UserRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		userRepo:    userRepo,
	}
}

// GetDashboard runs the independent aggregate reads concurrently.
func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		inventory      *entity.InventoryStats
		sales          *entity.SalesStats
		totalUsers     int64
		recentSales    []entity.Sale
		recentProducts []entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inventory, err = u.productRepo.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		sales, err = u.saleRepo.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalUsers, err = u.userRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		recentSales, err = u.saleRepo.FindLatest(gctx, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		recentProducts, err = u.productRepo.FindLatest(gctx, dashboardRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build admin dashboard: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalProduct:          inventory.TotalProducts,
		AvailableProduct:      inventory.AvailableProducts,
		UnavailableProduct:    inventory.UnavailableProducts,
		TotalProductItems:     inventory.TotalItems,
		TotalProductPrice:     inventory.TotalPrice,
		TotalProductSoldPrice: sales.TotalAmount,
		TotalUsers:            totalUsers,
		TotalSales:            sales.TotalSales,
		RecentProducts:        converter.ProductsToResponses(recentProducts),
		RecentSales:           converter.SalesToListResponses(recentSales),
	}, nil
}

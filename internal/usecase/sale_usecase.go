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
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart           = errors.New("no products in the cart")
	ErrInvalidCustomerName = errors.New("customer name is required")
	ErrInvalidGrandTotal   = errors.New("grand total must be greater than zero")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidLineTotal    = errors.New("line total must not be negative")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrSaleFailed          = errors.New("failed to record sale")
)

type SaleUsecase interface {
	RecordSale(ctx context.Context, userID uuid.UUID, req *dto.RecordSaleRequest) (*dto.SaleResponse, error)
}

type saleUsecase struct {
	log          *logrus.Logger
	txManager    repository.TxManager
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	recentIndex  *service.RecentSalesIndex
	auditService service.AuditService
	now          func() time.Time
}

func NewSaleUsecase(
	log *logrus.Logger,
	txManager repository.TxManager,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	recentIndex *service.RecentSalesIndex,
	auditService service.AuditService,
) SaleUsecase {
	return &saleUsecase{
		log:          log,
		txManager:    txManager,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		recentIndex:  recentIndex,
		auditService: auditService,
		now:          time.Now,
	}
}

// RecordSale validates the cart against one read of every referenced product
// and then writes the sale, its lines, the stock decrements and the recent
// sales index in a single transaction.
func (u *saleUsecase) RecordSale(ctx context.Context, userID uuid.UUID, req *dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, ErrInvalidCustomerName
	}
	if !req.GrandTotal.IsPositive() {
		return nil, ErrInvalidGrandTotal
	}

	// Quantities of repeated lines add up against the same stock.
	requested := make(map[int64]int, len(req.Items))
	productIDs := make([]int64, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cart item %d", ErrInvalidQuantity, i+1)
		}
		if item.TotalPrice.IsNegative() {
			return nil, fmt.Errorf("%w: cart item %d", ErrInvalidLineTotal, i+1)
		}
		if _, ok := requested[item.ProductID]; !ok {
			productIDs = append(productIDs, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}

	products, err := u.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		u.log.Warnf("Failed to load cart products: %+v", err)
		return nil, err
	}
	for _, id := range productIDs {
		product, ok := products[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		if product.Stock < requested[id] {
			return nil, insufficientStock(id)
		}
	}

	sale := &entity.Sale{
		UserID:       userID,
		CustomerName: customerName,
		GrandTotal:   req.GrandTotal,
		CreatedAt:    u.now(),
	}

	err = u.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		items := make([]entity.SaleProduct, len(req.Items))
		for i, item := range req.Items {
			items[i] = entity.SaleProduct{
				SaleID:     sale.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				TotalPrice: item.TotalPrice,
			}
		}
		if err := u.saleRepo.CreateItems(ctx, items); err != nil {
			return fmt.Errorf("create sale items: %w", err)
		}

		for _, id := range productIDs {
			affected, err := u.productRepo.DecrementStock(ctx, id, requested[id])
			if err != nil {
				return fmt.Errorf("decrement stock of product %d: %w", id, err)
			}
			// Another sale took the stock after validation.
			if affected == 0 {
				return insufficientStock(id)
			}
		}

		if err := u.recentIndex.Record(ctx, productIDs); err != nil {
			return fmt.Errorf("update recent sales index: %w", err)
		}

		if err := u.auditService.LogCreate(ctx, userID, entity.AuditActionSaleCreate, "sale",
			strconv.FormatInt(sale.ID, 10), entity.JSON{
				"customer_name": customerName,
				"grand_total":   req.GrandTotal.String(),
				"items":         len(items),
			}); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}

		for i := range items {
			items[i].Product = products[items[i].ProductID]
		}
		sale.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			u.log.Warnf("Sale rolled back, stock changed concurrently: %+v", err)
			return nil, err
		}
		u.log.Errorf("Failed to record sale, transaction rolled back: %+v", err)
		return nil, ErrSaleFailed
	}

	u.log.Infof("Sale recorded: id=%d, customer=%s, items=%d, grand_total=%s",
		sale.ID, sale.CustomerName, len(sale.Items), sale.GrandTotal.String())

	return converter.SaleToResponse(sale), nil
}

func insufficientStock(productID int64) error {
	return fmt.Errorf("%w for product ID %d", ErrInsufficientStock, productID)
}

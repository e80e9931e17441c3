package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/converter"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameExists   = errors.New("product already exists, update it in the product list")
	ErrProductNameTaken    = errors.New("another product with the same name already exists")
	ErrInvalidProductName  = errors.New("product name is required")
	ErrInvalidProductPrice = errors.New("price must be greater than zero")
	ErrInvalidProductStock = errors.New("stock must be greater than zero")
)

const (
	defaultPageSize   = 10
	maxPageSize       = 100
	defaultIndexLimit = 50
	maxIndexLimit     = 200
)

type ProductUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductListResponse, error)
	IndexItems(ctx context.Context, query *dto.IndexProductQuery) ([]dto.ProductResponse, error)
	RecentItems(ctx context.Context) ([]dto.ProductResponse, error)
}

type productUsecase struct {
	log            *logrus.Logger
	txManager      repository.TxManager
	productRepo    repository.ProductRepository
	recentSaleRepo repository.RecentSaleRepository
	auditService   service.AuditService
}

func NewProductUsecase(
	log *logrus.Logger,
	txManager repository.TxManager,
	productRepo repository.ProductRepository,
	recentSaleRepo repository.RecentSaleRepository,
	auditService service.AuditService,
) ProductUsecase {
	return &productUsecase{
		log:            log,
		txManager:      txManager,
		productRepo:    productRepo,
		recentSaleRepo: recentSaleRepo,
		auditService:   auditService,
	}
}

// validateProduct returns the trimmed name.
func validateProduct(name string, price decimal.Decimal, stock int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidProductName
	}
	if !price.IsPositive() {
		return "", ErrInvalidProductPrice
	}
	if stock <= 0 {
		return "", ErrInvalidProductStock
	}
	return name, nil
}

func (u *productUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, err := validateProduct(req.Name, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	existing, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find product by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductNameExists
	}

	product := &entity.Product{
		Name:  name,
		Price: req.Price,
		Stock: req.Stock,
	}

	err = u.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.productRepo.Create(ctx, product); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, userID, entity.AuditActionProductCreate, "product",
			strconv.FormatInt(product.ID, 10), converter.ProductToResponse(product))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrProductNameExists
		}
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Update(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name, err := validateProduct(req.Name, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}

	other, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find product by name: %+v", err)
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrProductNameTaken
	}

	before := converter.ProductToResponse(product)
	product.Name = name
	product.Price = req.Price
	product.Stock = req.Stock

	err = u.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.productRepo.Update(ctx, product); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, userID, entity.AuditActionProductUpdate, "product",
			strconv.FormatInt(product.ID, 10), before, converter.ProductToResponse(product))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrProductNameTaken
		}
		u.log.Warnf("Failed to update product %d: %+v", id, err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	products, matched, err := u.productRepo.FindAll(ctx, entity.ProductFilter{
		Name:       strings.TrimSpace(query.Name),
		SortBy:     query.SortBy,
		Descending: query.Desc,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	total, err := u.productRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count products: %+v", err)
		return nil, err
	}

	return &dto.ProductListResponse{
		Products:      converter.ProductsToResponses(products),
		TotalProducts: total,
		TotalMatched:  matched,
	}, nil
}

func (u *productUsecase) IndexItems(ctx context.Context, query *dto.IndexProductQuery) ([]dto.ProductResponse, error) {
	limit := query.Limit
	if limit < 1 {
		limit = defaultIndexLimit
	}
	if limit > maxIndexLimit {
		limit = maxIndexLimit
	}

	products, _, err := u.productRepo.FindAll(ctx, entity.ProductFilter{
		Name:        strings.TrimSpace(query.Name),
		InStockOnly: query.InStock,
		SortBy:      entity.ProductSortName,
		Limit:       limit,
	})
	if err != nil {
		u.log.Warnf("Failed to list index products: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) RecentItems(ctx context.Context) ([]dto.ProductResponse, error) {
	entries, err := u.recentSaleRepo.List(ctx)
	if err != nil {
		u.log.Warnf("Failed to list recent sales index: %+v", err)
		return nil, err
	}

	return converter.RecentSalesToProducts(entries), nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

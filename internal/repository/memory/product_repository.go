package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/shopspring/decimal"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) domainRepo.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	return r.insert(product)
}

func (r *productRepository) CreateBatch(ctx context.Context, products []entity.Product) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	for i := range products {
		if err := r.insert(&products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *productRepository) insert(product *entity.Product) error {
	if r.nameTaken(product.Name, 0) {
		return duplicateKey("products_name_key")
	}
	r.store.nextProductID++
	product.ID = r.store.nextProductID
	product.CreatedAt = stamp(product.CreatedAt)
	product.UpdatedAt = product.CreatedAt
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) nameTaken(name string, exceptID int64) bool {
	for id, p := range r.store.products {
		if id != exceptID && p.Name == name {
			return true
		}
	}
	return false
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if r.nameTaken(product.Name, product.ID) {
		return duplicateKey("products_name_key")
	}
	product.UpdatedAt = time.Now()
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	for _, p := range r.store.products {
		if p.Name == name {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	result := make(map[int64]*entity.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			cp := p
			result[id] = &cp
		}
	}
	return result, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	matched := make([]entity.Product, 0)
	for _, p := range r.store.products {
		if filter.Name != "" && !containsFold(p.Name, filter.Name) {
			continue
		}
		if filter.InStockOnly && !p.InStock() {
			continue
		}
		matched = append(matched, p)
	}

	less := productLess(filter.SortBy)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if filter.Descending {
			a, b = b, a
		}
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})

	return paginate(matched, filter.Limit, filter.Offset), int64(len(matched)), nil
}

func productLess(sortBy string) func(a, b entity.Product) bool {
	switch sortBy {
	case entity.ProductSortName:
		return func(a, b entity.Product) bool { return a.Name < b.Name }
	case entity.ProductSortPrice:
		return func(a, b entity.Product) bool { return a.Price.LessThan(b.Price) }
	case entity.ProductSortStock:
		return func(a, b entity.Product) bool { return a.Stock < b.Stock }
	default:
		return func(a, b entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

func (r *productRepository) FindLatest(ctx context.Context, limit int) ([]entity.Product, error) {
	products, _, err := r.FindAll(ctx, entity.ProductFilter{
		SortBy:     entity.ProductSortCreatedAt,
		Descending: true,
		Limit:      limit,
	})
	return products, err
}

func (r *productRepository) DecrementStock(ctx context.Context, id int64, amount int) (int64, error) {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	p, ok := r.store.products[id]
	if !ok || p.Stock < amount {
		return 0, nil
	}
	p.Stock -= amount
	p.UpdatedAt = time.Now()
	r.store.products[id] = p
	return 1, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	return int64(len(r.store.products)), nil
}

func (r *productRepository) Stats(ctx context.Context) (*entity.InventoryStats, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	stats := &entity.InventoryStats{TotalPrice: decimal.Zero}
	for _, p := range r.store.products {
		stats.TotalProducts++
		if p.InStock() {
			stats.AvailableProducts++
		} else {
			stats.UnavailableProducts++
		}
		stats.TotalItems += int64(p.Stock)
		stats.TotalPrice = stats.TotalPrice.Add(p.Price)
	}
	return stats, nil
}

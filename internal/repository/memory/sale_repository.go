package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type saleRepository struct {
	store *Store
}

func NewSaleRepository(store *Store) domainRepo.SaleRepository {
	return &saleRepository{store: store}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.nextSaleID++
	sale.ID = r.store.nextSaleID
	sale.CreatedAt = stamp(sale.CreatedAt)

	row := *sale
	row.User = nil
	row.Items = nil
	r.store.sales[row.ID] = row
	return nil
}

func (r *saleRepository) CreateItems(ctx context.Context, items []entity.SaleProduct) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	for i := range items {
		r.store.nextSaleItemID++
		items[i].ID = r.store.nextSaleItemID

		row := items[i]
		row.Sale = nil
		row.Product = nil
		r.store.saleItems[row.ID] = row
	}
	return nil
}

func (r *saleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	sale, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	if user, ok := r.store.users[sale.UserID]; ok {
		user.Role = r.store.roles[user.RoleID]
		sale.User = &user
	}
	sale.Items = r.itemsOf(sale.ID)
	return &sale, nil
}

// itemsOf returns the lines of a sale in insertion order with Product set.
func (r *saleRepository) itemsOf(saleID int64) []entity.SaleProduct {
	items := make([]entity.SaleProduct, 0)
	for _, item := range r.store.saleItems {
		if item.SaleID != saleID {
			continue
		}
		if p, ok := r.store.products[item.ProductID]; ok {
			item.Product = &p
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *saleRepository) FindAllWithItems(ctx context.Context) ([]entity.Sale, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	sales := r.sorted(func(a, b entity.Sale) bool { return a.ID > b.ID })
	for i := range sales {
		sales[i].Items = r.itemsOf(sales[i].ID)
	}
	return sales, nil
}

func (r *saleRepository) FindLatest(ctx context.Context, limit int) ([]entity.Sale, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	sales := r.sorted(func(a, b entity.Sale) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	sales = paginate(sales, limit, 0)
	for i := range sales {
		if user, ok := r.store.users[sales[i].UserID]; ok {
			sales[i].User = &user
		}
	}
	return sales, nil
}

func (r *saleRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	sales := make([]entity.Sale, 0)
	for _, sale := range r.sorted(func(a, b entity.Sale) bool { return a.CreatedAt.Before(b.CreatedAt) }) {
		if !sale.CreatedAt.Before(from) && sale.CreatedAt.Before(to) {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

func (r *saleRepository) sorted(less func(a, b entity.Sale) bool) []entity.Sale {
	sales := make([]entity.Sale, 0, len(r.store.sales))
	for _, sale := range r.store.sales {
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool { return less(sales[i], sales[j]) })
	return sales
}

func (r *saleRepository) FindItems(ctx context.Context, filter entity.SaleItemFilter) (*entity.SaleItemPage, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	page := &entity.SaleItemPage{TotalPrice: decimal.Zero}
	matched := make([]entity.SaleProduct, 0)
	for _, item := range r.store.saleItems {
		sale, ok := r.store.sales[item.SaleID]
		if !ok {
			continue
		}
		product, ok := r.store.products[item.ProductID]
		if !ok {
			continue
		}
		if filter.CustomerName != "" && !containsFold(sale.CustomerName, filter.CustomerName) {
			continue
		}
		if filter.ProductName != "" && !containsFold(product.Name, filter.ProductName) {
			continue
		}
		if filter.From != nil && sale.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !sale.CreatedAt.Before(*filter.To) {
			continue
		}
		item.Sale = &sale
		item.Product = &product
		matched = append(matched, item)
		page.TotalPrice = page.TotalPrice.Add(item.TotalPrice)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	page.TotalRows = int64(len(matched))
	page.Items = paginate(matched, filter.Limit, filter.Offset)
	return page, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	return int64(len(r.store.sales)), nil
}

func (r *saleRepository) Stats(ctx context.Context) (*entity.SalesStats, error) {
	return r.stats(ctx, func(entity.Sale) bool { return true })
}

func (r *saleRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*entity.SalesStats, error) {
	return r.stats(ctx, func(s entity.Sale) bool { return s.UserID == userID })
}

func (r *saleRepository) stats(ctx context.Context, match func(entity.Sale) bool) (*entity.SalesStats, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	stats := &entity.SalesStats{TotalAmount: decimal.Zero}
	for _, sale := range r.store.sales {
		if !match(sale) {
			continue
		}
		stats.TotalSales++
		stats.TotalAmount = stats.TotalAmount.Add(sale.GrandTotal)
	}
	return stats, nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
)

type recentSaleRepository struct {
	store *Store
}

func NewRecentSaleRepository(store *Store) domainRepo.RecentSaleRepository {
	return &recentSaleRepository{store: store}
}

func (r *recentSaleRepository) Contains(ctx context.Context, productID int64) (bool, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	return r.contains(productID), nil
}

func (r *recentSaleRepository) contains(productID int64) bool {
	for _, entry := range r.store.recent {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

func (r *recentSaleRepository) Insert(ctx context.Context, productID int64) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if r.contains(productID) {
		return nil
	}
	r.store.nextRecentID++
	r.store.recent[r.store.nextRecentID] = entity.RecentSale{
		ID:        r.store.nextRecentID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *recentSaleRepository) Trim(ctx context.Context, maxSize int) (int64, error) {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if maxSize < 0 {
		maxSize = 0
	}
	entries := r.newestFirst()
	var removed int64
	for _, entry := range entries[min(maxSize, len(entries)):] {
		delete(r.store.recent, entry.ID)
		removed++
	}
	return removed, nil
}

func (r *recentSaleRepository) Count(ctx context.Context) (int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	return int64(len(r.store.recent)), nil
}

func (r *recentSaleRepository) List(ctx context.Context) ([]entity.RecentSale, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	entries := r.newestFirst()
	for i := range entries {
		if p, ok := r.store.products[entries[i].ProductID]; ok {
			entries[i].Product = &p
		}
	}
	return entries, nil
}

func (r *recentSaleRepository) newestFirst() []entity.RecentSale {
	entries := make([]entity.RecentSale, 0, len(r.store.recent))
	for _, entry := range r.store.recent {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	return entries
}

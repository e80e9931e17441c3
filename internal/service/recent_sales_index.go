package service

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
)

// RecentSalesCapacity is the number of distinct products kept in the index.
const RecentSalesCapacity = 10

// RecentSalesIndex is a bounded, duplicate-free FIFO of recently sold
// products. Products already present keep their position.
type RecentSalesIndex struct {
	repo     repository.RecentSaleRepository
	capacity int
}

func NewRecentSalesIndex(repo repository.RecentSaleRepository) *RecentSalesIndex {
	return &RecentSalesIndex{repo: repo, capacity: RecentSalesCapacity}
}

// Record inserts every product not yet indexed in first-seen order and then
// evicts the oldest entries beyond capacity.
func (i *RecentSalesIndex) Record(ctx context.Context, productIDs []int64) error {
	seen := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		exists, err := i.repo.Contains(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := i.repo.Insert(ctx, id); err != nil {
			return err
		}
	}

	_, err := i.repo.Trim(ctx, i.capacity)
	return err
}

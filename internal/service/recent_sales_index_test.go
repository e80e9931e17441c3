package service

import (
	"context"
	"testing"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentSalesIndex_DeduplicatesAndKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecentSaleRepository(memory.NewStore())
	index := NewRecentSalesIndex(repo)

	require.NoError(t, index.Record(ctx, []int64{1, 2, 1}))
	require.NoError(t, index.Record(ctx, []int64{3, 1}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.EqualValues(t, 3, entries[0].ProductID)
	assert.EqualValues(t, 2, entries[1].ProductID)
	assert.EqualValues(t, 1, entries[2].ProductID)
}

func TestRecentSalesIndex_EvictsOldestBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecentSaleRepository(memory.NewStore())
	index := NewRecentSalesIndex(repo)

	for id := int64(1); id <= 11; id++ {
		require.NoError(t, index.Record(ctx, []int64{id}))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, RecentSalesCapacity, count)

	oldest, err := repo.Contains(ctx, 1)
	require.NoError(t, err)
	assert.False(t, oldest)

	newest, err := repo.Contains(ctx, 11)
	require.NoError(t, err)
	assert.True(t, newest)
}

func TestRecentSalesIndex_SingleSaleWithManyProducts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecentSaleRepository(memory.NewStore())
	index := NewRecentSalesIndex(repo)

	ids := make([]int64, 0, 12)
	for id := int64(1); id <= 12; id++ {
		ids = append(ids, id)
	}
	require.NoError(t, index.Record(ctx, ids))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, RecentSalesCapacity)
	assert.EqualValues(t, 12, entries[0].ProductID)
	assert.EqualValues(t, 3, entries[len(entries)-1].ProductID)
}

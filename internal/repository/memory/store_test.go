package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(name string, price string, stock int) *entity.Product {
	return &entity.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())

	p := newProduct("Soap", "2.50", 4)
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soap", got.Name)

	missing, err := repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, newProduct("Soap", "1.00", 1))
	assert.ErrorIs(t, err, domainRepo.ErrDuplicateKey)
}

func TestProductRepository_FindAllFiltersSortsAndPages(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())
	require.NoError(t, repo.Create(ctx, newProduct("Green Tea", "3.00", 0)))
	require.NoError(t, repo.Create(ctx, newProduct("Black Tea", "5.00", 2)))
	require.NoError(t, repo.Create(ctx, newProduct("Coffee", "9.00", 7)))

	products, total, err := repo.FindAll(ctx, entity.ProductFilter{Name: "TEA", SortBy: entity.ProductSortPrice, Descending: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, products, 2)
	assert.Equal(t, "Black Tea", products[0].Name)

	products, total, err = repo.FindAll(ctx, entity.ProductFilter{InStockOnly: true, SortBy: entity.ProductSortName})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "Black Tea", products[0].Name)
	assert.Equal(t, "Coffee", products[1].Name)

	products, total, err = repo.FindAll(ctx, entity.ProductFilter{SortBy: entity.ProductSortName, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Coffee", products[0].Name)
}

func TestProductRepository_DecrementStockIsGuarded(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())
	p := newProduct("Milk", "1.20", 3)
	require.NoError(t, repo.Create(ctx, p))

	affected, err := repo.DecrementStock(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DecrementStock(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
}

func TestProductRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())
	require.NoError(t, repo.Create(ctx, newProduct("A", "1.50", 0)))
	require.NoError(t, repo.Create(ctx, newProduct("B", "2.50", 5)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.AvailableProducts)
	assert.EqualValues(t, 1, stats.UnavailableProducts)
	assert.EqualValues(t, 5, stats.TotalItems)
	assert.True(t, decimal.RequireFromString("4.00").Equal(stats.TotalPrice))
}

func TestRecentSaleRepository_InsertAndTrim(t *testing.T) {
	ctx := context.Background()
	repo := NewRecentSaleRepository(NewStore())

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, repo.Insert(ctx, id))
	}
	require.NoError(t, repo.Insert(ctx, 3))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	removed, err := repo.Trim(ctx, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	for _, id := range []int64{1, 2} {
		ok, err := repo.Contains(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok, "product %d should be evicted", id)
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.EqualValues(t, 5, entries[0].ProductID)
	assert.EqualValues(t, 3, entries[2].ProductID)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	products := NewProductRepository(store)
	sales := NewSaleRepository(store)
	tx := NewTxManager(store)

	p := newProduct("Bread", "2.00", 5)
	require.NoError(t, products.Create(ctx, p))

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := products.DecrementStock(ctx, p.ID, 5); err != nil {
			return err
		}
		sale := &entity.Sale{UserID: uuid.New(), CustomerName: "Ann", GrandTotal: decimal.NewFromInt(10)}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	count, err := sales.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	products := NewProductRepository(store)
	tx := NewTxManager(store)

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return products.Create(ctx, newProduct("Eggs", "3.10", 12))
		})
	})
	require.NoError(t, err)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSaleRepository_FindItemsFiltersAndTotals(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	products := NewProductRepository(store)
	sales := NewSaleRepository(store)

	apple := newProduct("Apple", "1.00", 10)
	pear := newProduct("Pear", "2.00", 10)
	require.NoError(t, products.Create(ctx, apple))
	require.NoError(t, products.Create(ctx, pear))

	seller := uuid.New()
	first := &entity.Sale{UserID: seller, CustomerName: "Alice", GrandTotal: decimal.NewFromInt(5)}
	require.NoError(t, sales.Create(ctx, first))
	require.NoError(t, sales.CreateItems(ctx, []entity.SaleProduct{
		{SaleID: first.ID, ProductID: apple.ID, Quantity: 1, TotalPrice: decimal.NewFromInt(1)},
		{SaleID: first.ID, ProductID: pear.ID, Quantity: 2, TotalPrice: decimal.NewFromInt(4)},
	}))
	second := &entity.Sale{UserID: seller, CustomerName: "Bob", GrandTotal: decimal.NewFromInt(3)}
	require.NoError(t, sales.Create(ctx, second))
	require.NoError(t, sales.CreateItems(ctx, []entity.SaleProduct{
		{SaleID: second.ID, ProductID: apple.ID, Quantity: 3, TotalPrice: decimal.NewFromInt(3)},
	}))

	page, err := sales.FindItems(ctx, entity.SaleItemFilter{ProductName: "app"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalRows)
	assert.True(t, decimal.NewFromInt(4).Equal(page.TotalPrice))

	page, err = sales.FindItems(ctx, entity.SaleItemFilter{CustomerName: "ali", Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalRows)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pear", page.Items[0].Product.Name)

	stats, err := sales.StatsByUser(ctx, seller)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalSales)
	assert.True(t, decimal.NewFromInt(8).Equal(stats.TotalAmount))

	detail, err := sales.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Apple", detail.Items[0].Product.Name)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	u := &entity.User{RoleID: entity.RoleIDSales, Name: "Sam", Username: "sam", Password: "x"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)

	err := repo.Create(ctx, &entity.User{RoleID: entity.RoleIDSales, Name: "Other", Username: "sam"})
	assert.ErrorIs(t, err, domainRepo.ErrDuplicateKey)

	got, err := repo.FindByUsername(ctx, "sam")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSales, got.Role.RoleName)
}

package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/repository/memory"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type testEnv struct {
	log       *logrus.Logger
	store     *memory.Store
	txManager repository.TxManager
	products  repository.ProductRepository
	sales     repository.SaleRepository
	recent    repository.RecentSaleRepository
	users     repository.UserRepository
	otps      repository.OtpRepository
	auditLogs repository.AuditLogRepository
	audit     service.AuditService
}

func newTestEnv() *testEnv {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	auditLogs := memory.NewAuditLogRepository(store)
	return &testEnv{
		log:       log,
		store:     store,
		txManager: memory.NewTxManager(store),
		products:  memory.NewProductRepository(store),
		sales:     memory.NewSaleRepository(store),
		recent:    memory.NewRecentSaleRepository(store),
		users:     memory.NewUserRepository(store),
		otps:      memory.NewOtpRepository(store),
		auditLogs: auditLogs,
		audit:     service.NewAuditService(log, auditLogs),
	}
}

func (e *testEnv) saleUsecase() *saleUsecase {
	return NewSaleUsecase(e.log, e.txManager, e.products, e.sales,
		service.NewRecentSalesIndex(e.recent), e.audit).(*saleUsecase)
}

func (e *testEnv) seedProduct(t *testing.T, name, price string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}

func (e *testEnv) seedUser(t *testing.T, name, username string, roleID int) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Username: username, Password: "x", RoleID: roleID, IsActive: true}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) stockOf(t *testing.T, id int64) int {
	t.Helper()
	p, err := e.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func (e *testEnv) productCount(t *testing.T) int64 {
	t.Helper()
	n, err := e.products.Count(context.Background())
	require.NoError(t, err)
	return n
}

func (e *testEnv) saleCount(t *testing.T) int64 {
	t.Helper()
	n, err := e.sales.Count(context.Background())
	require.NoError(t, err)
	return n
}

func (e *testEnv) auditCount(t *testing.T) int64 {
	t.Helper()
	_, n, err := e.auditLogs.FindAll(context.Background(), 0, 0)
	require.NoError(t, err)
	return n
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testUserID = uuid.MustParse("7f1b7e1c-3c4a-4a53-9d3e-1a2b3c4d5e6f")

// failingRecentRepo fails every insert into the recent-sales index.
type failingRecentRepo struct {
	repository.RecentSaleRepository
}

func (failingRecentRepo) Insert(context.Context, int64) error {
	return errBoom
}

// drainedStockRepo simulates a concurrent sale that took the stock between
// validation and the guarded decrement.
type drainedStockRepo struct {
	repository.ProductRepository
}

func (drainedStockRepo) DecrementStock(context.Context, int64, int) (int64, error) {
	return 0, nil
}

// failingBatchRepo fails bulk inserts.
type failingBatchRepo struct {
	repository.ProductRepository
}

func (failingBatchRepo) CreateBatch(context.Context, []entity.Product) error {
	return errBoom
}

// Package memory implements every repository port on top of process memory.
// It backs the usecase and handler tests and honours transactions by
// restoring a snapshot when the transaction function fails.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds the tables shared by the repositories of this package.
type Store struct {
	mu sync.RWMutex

	products      map[int64]entity.Product
	nextProductID int64

	sales      map[int64]entity.Sale
	nextSaleID int64

	saleItems      map[int64]entity.SaleProduct
	nextSaleItemID int64

	recent       map[int64]entity.RecentSale
	nextRecentID int64

	users map[uuid.UUID]entity.User
	roles map[int]entity.Role

	otps      map[int64]entity.Otp
	nextOtpID int64

	auditLogs      map[int64]entity.AuditLog
	nextAuditLogID int64
}

func NewStore() *Store {
	return &Store{
		products:  make(map[int64]entity.Product),
		sales:     make(map[int64]entity.Sale),
		saleItems: make(map[int64]entity.SaleProduct),
		recent:    make(map[int64]entity.RecentSale),
		users:     make(map[uuid.UUID]entity.User),
		roles: map[int]entity.Role{
			entity.RoleIDAdmin: {ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
			entity.RoleIDSales: {ID: entity.RoleIDSales, RoleName: entity.RoleSales},
		},
		otps:      make(map[int64]entity.Otp),
		auditLogs: make(map[int64]entity.AuditLog),
	}
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, ok := ctx.Value(txKey{}).(bool)
	return ok && v
}

// Inside a transaction the write lock is already held by the TxManager.
func (s *Store) rlock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.RLock()
	}
}

func (s *Store) runlock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.RUnlock()
	}
}

func (s *Store) wlock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.Lock()
	}
}

func (s *Store) wunlock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.Unlock()
	}
}

type snapshot struct {
	products       map[int64]entity.Product
	nextProductID  int64
	sales          map[int64]entity.Sale
	nextSaleID     int64
	saleItems      map[int64]entity.SaleProduct
	nextSaleItemID int64
	recent         map[int64]entity.RecentSale
	nextRecentID   int64
	users          map[uuid.UUID]entity.User
	otps           map[int64]entity.Otp
	nextOtpID      int64
	auditLogs      map[int64]entity.AuditLog
	nextAuditLogID int64
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		products:       cloneMap(s.products),
		nextProductID:  s.nextProductID,
		sales:          cloneMap(s.sales),
		nextSaleID:     s.nextSaleID,
		saleItems:      cloneMap(s.saleItems),
		nextSaleItemID: s.nextSaleItemID,
		recent:         cloneMap(s.recent),
		nextRecentID:   s.nextRecentID,
		users:          cloneMap(s.users),
		otps:           cloneMap(s.otps),
		nextOtpID:      s.nextOtpID,
		auditLogs:      cloneMap(s.auditLogs),
		nextAuditLogID: s.nextAuditLogID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.products, s.nextProductID = snap.products, snap.nextProductID
	s.sales, s.nextSaleID = snap.sales, snap.nextSaleID
	s.saleItems, s.nextSaleItemID = snap.saleItems, snap.nextSaleItemID
	s.recent, s.nextRecentID = snap.recent, snap.nextRecentID
	s.users = snap.users
	s.otps, s.nextOtpID = snap.otps, snap.nextOtpID
	s.auditLogs, s.nextAuditLogID = snap.auditLogs, snap.nextAuditLogID
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type txManager struct {
	store *Store
}

func NewTxManager(store *Store) domainRepo.TxManager {
	return &txManager{store: store}
}

// WithinTransaction holds the store write lock for the whole of fn, so
// transactions are serialized against each other and against plain calls.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			m.store.restore(snap)
			panic(r)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

func duplicateKey(constraint string) error {
	return fmt.Errorf("%w: %s", domainRepo.ErrDuplicateKey, constraint)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// paginate applies limit/offset the way SQL does: a non-positive limit
// means no limit.
func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

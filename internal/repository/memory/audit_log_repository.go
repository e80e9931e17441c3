package memory

import (
	"context"
	"sort"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
)

type auditLogRepository struct {
	store *Store
}

func NewAuditLogRepository(store *Store) domainRepo.AuditLogRepository {
	return &auditLogRepository{store: store}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	r.store.nextAuditLogID++
	log.ID = r.store.nextAuditLogID
	log.CreatedAt = stamp(log.CreatedAt)

	row := *log
	row.User = nil
	r.store.auditLogs[row.ID] = row
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	logs := make([]entity.AuditLog, 0, len(r.store.auditLogs))
	for _, log := range r.store.auditLogs {
		if log.UserID != nil {
			if u, ok := r.store.users[*log.UserID]; ok {
				log.User = &u
			}
		}
		logs = append(logs, log)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID > logs[j].ID })
	return paginate(logs, limit, offset), int64(len(logs)), nil
}

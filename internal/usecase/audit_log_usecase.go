package usecase

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/converter"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// List returns audit entries newest first.
func (u *auditLogUsecase) List(ctx context.Context, page, pageSize int) (*dto.AuditLogListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	logs, total, err := u.auditLogRepo.FindAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}

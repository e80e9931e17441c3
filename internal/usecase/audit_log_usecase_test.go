package usecase

import (
	"context"
	"testing"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogList(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin", entity.RoleIDAdmin)

	require.NoError(t, env.audit.LogEvent(ctx, admin.ID, entity.AuditActionProductImport, entity.JSON{"file": "a.csv"}))
	require.NoError(t, env.audit.LogEvent(ctx, uuid.Nil, entity.AuditActionProductImport, entity.JSON{"file": "b.csv"}))
	require.NoError(t, env.audit.LogEvent(ctx, admin.ID, entity.AuditActionProductImport, entity.JSON{"file": "c.csv"}))

	uc := NewAuditLogUsecase(env.log, env.auditLogs)
	page, err := uc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	require.Len(t, page.Logs, 2)
	assert.Equal(t, "c.csv", page.Logs[0].Metadata["file"])
	require.NotNil(t, page.Logs[0].User)
	assert.Equal(t, "admin", page.Logs[0].User.Username)
	assert.Nil(t, page.Logs[1].User)

	rest, err := uc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest.Logs, 1)
	assert.Equal(t, "a.csv", rest.Logs[0].Metadata["file"])
}

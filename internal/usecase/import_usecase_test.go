package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importCSV = `Name,Price,Stock
Widget,2.50,4
Gadget,3.00,1
Gizmo,5.00,7
,1.00,1
Bad,abc,1
Gizmo,6.00,7
`

func (e *testEnv) importUsecase() ImportUsecase {
	return NewImportUsecase(e.log, e.txManager, e.products, e.audit)
}

func TestImport_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.seedProduct(t, "Widget", "2.50", 4)
	gadget := env.seedProduct(t, "Gadget", "1.00", 1)

	summary, err := env.importUsecase().Import(ctx, testUserID, "products.CSV", strings.NewReader(importCSV))
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 2, summary.Skipped)
	assertCountsAddUp(t, summary)

	updated, err := env.products.FindByID(ctx, gadget.ID)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(money("3.00")))

	gizmo, err := env.products.FindByName(ctx, "Gizmo")
	require.NoError(t, err)
	require.NotNil(t, gizmo)
	assert.True(t, gizmo.Price.Equal(money("6.00")), "a later row of the same file wins")

	_, total, err := env.auditLogs.FindAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestImport_RejectsBadFiles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	uc := env.importUsecase()

	_, err := uc.Import(ctx, testUserID, "products.txt", strings.NewReader(importCSV))
	assert.ErrorIs(t, err, ErrUnsupportedFileFormat)

	_, err = uc.Import(ctx, testUserID, "products.csv", strings.NewReader("Title,Price,Stock\nA,1,1\n"))
	assert.ErrorIs(t, err, ErrInvalidFileHeader)

	_, err = uc.Import(ctx, testUserID, "products.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyImportFile)

	n, err := env.products.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	gadget := env.seedProduct(t, "Gadget", "1.00", 1)

	uc := NewImportUsecase(env.log, env.txManager, failingBatchRepo{env.products}, env.audit)
	_, err := uc.Import(ctx, testUserID, "products.csv", strings.NewReader(importCSV))
	require.ErrorIs(t, err, ErrImportFailed)

	// The Gadget update ran before the failing insert and must be undone.
	p, err := env.products.FindByID(ctx, gadget.ID)
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(money("1.00")))

	products, _, err := env.products.FindAll(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Zero(t, env.auditCount(t))
}

func TestImport_RepeatedNewNameCountsEveryRow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	summary, err := env.importUsecase().Import(ctx, testUserID, "p.csv",
		strings.NewReader("Name,Price,Stock\nGizmo,5.00,7\nGizmo,6.00,7\nGizmo,6.00,7\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Duplicates)
	assertCountsAddUp(t, summary)

	gizmo, err := env.products.FindByName(ctx, "Gizmo")
	require.NoError(t, err)
	require.NotNil(t, gizmo)
	assert.True(t, gizmo.Price.Equal(money("6.00")))
	assert.EqualValues(t, 1, env.productCount(t))
}

func assertCountsAddUp(t *testing.T, s *dto.ImportSummaryResponse) {
	t.Helper()
	assert.Equal(t, s.Total, s.Imported+s.Updated+s.Duplicates+s.Skipped,
		"imported %d + updated %d + duplicates %d + skipped %d", s.Imported, s.Updated, s.Duplicates, s.Skipped)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/importer"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedFileFormat = importer.ErrUnsupportedFormat
	ErrInvalidFileHeader     = importer.ErrInvalidHeader
	ErrEmptyImportFile       = importer.ErrEmptyFile
	ErrImportFailed          = errors.New("failed to import products")
)

type ImportUsecase interface {
	Import(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*dto.ImportSummaryResponse, error)
}

type importUsecase struct {
	log          *logrus.Logger
	txManager    repository.TxManager
	productRepo  repository.ProductRepository
	auditService service.AuditService
}

func NewImportUsecase(
	log *logrus.Logger,
	txManager repository.TxManager,
	productRepo repository.ProductRepository,
	auditService service.AuditService,
) ImportUsecase {
	return &importUsecase{
		log:          log,
		txManager:    txManager,
		productRepo:  productRepo,
		auditService: auditService,
	}
}

// Import upserts the products of a CSV or XLSX file by name. A row whose
// name, price and stock all match the stored product counts as a duplicate,
// a row with a known name and different values updates it, any other row
// inserts a new product. The whole file is applied in one transaction.
func (u *importUsecase) Import(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*dto.ImportSummaryResponse, error) {
	parsed, err := importer.Parse(filepath.Ext(filename), r)
	if err != nil {
		if isImportInputError(err) {
			return nil, err
		}
		u.log.Warnf("Failed to parse import file %s: %+v", filename, err)
		return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	summary := &dto.ImportSummaryResponse{
		Total:   len(parsed.Rows) + parsed.Skipped,
		Skipped: parsed.Skipped,
	}

	err = u.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Products touched earlier in this file, keyed by name.
		pending := make(map[string]*entity.Product)
		inserts := make([]*entity.Product, 0)

		for _, row := range parsed.Rows {
			key := row.Name
			product, seen := pending[key]
			if !seen {
				product, err = u.productRepo.FindByName(ctx, row.Name)
				if err != nil {
					return fmt.Errorf("find product %q: %w", row.Name, err)
				}
			}

			switch {
			case product == nil:
				product = &entity.Product{Name: row.Name, Price: row.Price, Stock: row.Stock}
				pending[key] = product
				inserts = append(inserts, product)
				summary.Imported++
			case product.Matches(row.Price, row.Stock):
				pending[key] = product
				summary.Duplicates++
			default:
				product.Price = row.Price
				product.Stock = row.Stock
				pending[key] = product
				// A product still queued for insert takes the new values
				// when the batch is written.
				if product.ID != 0 {
					if err := u.productRepo.Update(ctx, product); err != nil {
						return fmt.Errorf("update product %q: %w", row.Name, err)
					}
				}
				summary.Updated++
			}
		}

		if len(inserts) > 0 {
			batch := make([]entity.Product, len(inserts))
			for i, p := range inserts {
				batch[i] = *p
			}
			if err := u.productRepo.CreateBatch(ctx, batch); err != nil {
				return fmt.Errorf("insert products: %w", err)
			}
		}

		return u.auditService.LogEvent(ctx, userID, entity.AuditActionProductImport, entity.JSON{
			"file":       filename,
			"total":      summary.Total,
			"imported":   summary.Imported,
			"updated":    summary.Updated,
			"duplicates": summary.Duplicates,
			"skipped":    summary.Skipped,
		})
	})
	if err != nil {
		u.log.Errorf("Failed to import products from %s, transaction rolled back: %+v", filename, err)
		return nil, ErrImportFailed
	}

	u.log.Infof("Products imported from %s: total=%d, imported=%d, updated=%d, duplicates=%d, skipped=%d",
		filename, summary.Total, summary.Imported, summary.Updated, summary.Duplicates, summary.Skipped)

	return summary, nil
}

func isImportInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFileFormat) ||
		errors.Is(err, ErrInvalidFileHeader) ||
		errors.Is(err, ErrEmptyImportFile)
}

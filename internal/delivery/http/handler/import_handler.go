package handler

import (
	"errors"
	"net/http"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
)

const uploadField = "file"

type ImportHandler struct {
	importUsecase usecase.ImportUsecase
	maxBytes      int64
}

func NewImportHandler(importUsecase usecase.ImportUsecase, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		importUsecase: importUsecase,
		maxBytes:      maxBytes,
	}
}

// Upload handles bulk product import
// @Summary Import products
// @Description Upsert products from a CSV or XLSX file with the columns Name, Price and Stock
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /upload/product [post]
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.PayloadTooLarge(w, "File is too large")
			return
		}
		response.BadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		response.BadRequest(w, "No file uploaded")
		return
	}

	summary, err := h.importUsecase.Import(r.Context(), p.UserID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedFileFormat),
			errors.Is(err, usecase.ErrInvalidFileHeader),
			errors.Is(err, usecase.ErrEmptyImportFile):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to import products")
		}
		return
	}

	response.Success(w, http.StatusOK, "Products imported successfully", summary)
}

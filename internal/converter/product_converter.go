package converter

import (
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
)

func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}

// RecentSalesToProducts returns the indexed products in index order,
// skipping entries whose product is not loaded.
func RecentSalesToProducts(entries []entity.RecentSale) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		responses = append(responses, *ProductToResponse(entry.Product))
	}
	return responses
}

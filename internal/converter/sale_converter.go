package converter

import (
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func SaleToResponse(sale *entity.Sale) *dto.SaleResponse {
	if sale == nil {
		return nil
	}

	return &dto.SaleResponse{
		ID:           sale.ID,
		UserID:       sale.UserID,
		CustomerName: sale.CustomerName,
		GrandTotal:   sale.GrandTotal,
		Items:        SaleItemsToResponses(sale.Items),
		CreatedAt:    sale.CreatedAt,
	}
}

func SaleItemsToResponses(items []entity.SaleProduct) []dto.SaleItemResponse {
	responses := make([]dto.SaleItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.SaleItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductPrice: decimal.Zero,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		}
		if item.Product != nil {
			responses[i].ProductName = item.Product.Name
			responses[i].ProductPrice = item.Product.Price
		}
	}
	return responses
}

func SaleToDetailResponse(sale *entity.Sale) *dto.SaleDetailResponse {
	if sale == nil {
		return nil
	}

	return &dto.SaleDetailResponse{
		ID:           sale.ID,
		CustomerName: sale.CustomerName,
		GrandTotal:   sale.GrandTotal,
		ItemsTotal:   sale.ItemsTotal(),
		Seller:       UserToResponse(sale.User),
		Items:        SaleItemsToResponses(sale.Items),
		CreatedAt:    sale.CreatedAt,
	}
}

func SalesToListResponses(sales []entity.Sale) []dto.SaleListItemResponse {
	responses := make([]dto.SaleListItemResponse, len(sales))
	for i, sale := range sales {
		responses[i] = dto.SaleListItemResponse{
			ID:           sale.ID,
			CustomerName: sale.CustomerName,
			GrandTotal:   sale.GrandTotal,
			CreatedAt:    sale.CreatedAt,
		}
		if sale.User != nil {
			responses[i].SellerName = sale.User.Name
		}
	}
	return responses
}

func SalesToWithProductsResponses(sales []entity.Sale) []dto.SaleWithProductsResponse {
	responses := make([]dto.SaleWithProductsResponse, len(sales))
	for i, sale := range sales {
		responses[i] = dto.SaleWithProductsResponse{
			SaleID:   sale.ID,
			UserID:   sale.UserID,
			Products: SaleItemsToResponses(sale.Items),
		}
	}
	return responses
}

func SaleItemsToSummaryRows(items []entity.SaleProduct) []dto.SaleSummaryRowResponse {
	rows := make([]dto.SaleSummaryRowResponse, len(items))
	for i, item := range items {
		rows[i] = dto.SaleSummaryRowResponse{
			ID:         item.ID,
			SaleID:     item.SaleID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
		if item.Sale != nil {
			rows[i].CustomerName = item.Sale.CustomerName
			rows[i].CreatedAt = item.Sale.CreatedAt
		}
		if item.Product != nil {
			rows[i].ProductName = item.Product.Name
		}
	}
	return rows
}

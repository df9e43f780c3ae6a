package catalog

import "github.com/1000011-67/Earthly-Liquids/internal/domain"

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
	Stock       int      `json:"stock"`
}

func mapProductToResponse(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Features:    product.Features,
		Stock:       product.Stock,
	}
}

func mapProductsToResponse(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, mapProductToResponse(product))
	}
	return responses
}

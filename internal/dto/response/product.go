package response

import (
	"time"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    *string   `json:"category"`
	Gender      *string   `json:"gender"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func ProductToResponse(product *entity.Product) *ProductResponse {
	sizes := product.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	colors := product.Colors
	if colors == nil {
		colors = []string{}
	}

	return &ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		Gender:      product.Gender,
		Sizes:       sizes,
		Colors:      colors,
		Image:       product.Image,
		CreatedAt:   product.CreatedAt,
	}
}

package products

import "github.com/angelmondragon/shopassist-backend/pkg/db/models"

// ProductDTO is the product payload returned to clients.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
}

// FromModel maps a catalog row into its API shape.
func FromModel(p models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.Round(2).InexactFloat64(),
		Description: p.Description,
	}
}

// FromModels maps rows into a never-nil slice so empty results encode as [].
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}

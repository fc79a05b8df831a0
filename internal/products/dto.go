package products

import (
	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/shop"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	Reviews     []ReviewDTO     `json:"reviews"`
}

// ReviewDTO surfaces a product review.
type ReviewDTO struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// NewProductDTO builds a DTO from the stored product.
func NewProductDTO(p shop.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    string(p.Category),
		Image:       p.Image,
		Description: p.Description,
		Sizes:       append([]string{}, p.Sizes...),
		Reviews:     make([]ReviewDTO, 0, len(p.Reviews)),
	}
	for _, r := range p.Reviews {
		dto.Reviews = append(dto.Reviews, ReviewDTO{
			ID:      r.ID,
			User:    r.User,
			Rating:  r.Rating,
			Comment: r.Comment,
		})
	}
	return dto
}

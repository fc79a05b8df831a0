package cart

import (
	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/shop"
)

// CartLineDTO is one (product, size) line with its derived total.
type CartLineDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Image     string          `json:"image"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartDTO is the full cart snapshot. Subtotal and item count are recomputed
// on every build, never stored.
type CartDTO struct {
	Lines     []CartLineDTO   `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
	IsOpen    bool            `json:"is_open"`
}

// NewCartDTO derives the response payload from a cart snapshot.
func NewCartDTO(lines []shop.CartLine, isOpen bool) *CartDTO {
	dto := &CartDTO{
		Lines:    make([]CartLineDTO, 0, len(lines)),
		Subtotal: decimal.Zero,
		IsOpen:   isOpen,
	}
	for _, l := range lines {
		lineTotal := l.LineTotal()
		dto.Lines = append(dto.Lines, CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Category:  string(l.Category),
			Image:     l.Image,
			Size:      l.Size,
			Quantity:  l.Quantity,
			LineTotal: lineTotal,
		})
		dto.Subtotal = dto.Subtotal.Add(lineTotal)
		dto.ItemCount += l.Quantity
	}
	return dto
}

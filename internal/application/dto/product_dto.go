package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// CreateProductRequest payload for POST /api/products (admin).
// ProductID is optional; the next free numeric id is assigned when absent.
type CreateProductRequest struct {
	ProductID   *int64          `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Rating      *float64        `json:"rating"`
}

// UpdateProductRequest payload for PUT /api/products/:id. Nil fields are left
// untouched (partial update).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"`
	Rating      *float64         `json:"rating"`
}

// ProductResponse is the storefront view of a product. ID is the numeric
// catalog id when assigned, otherwise a short form of the opaque id.
type ProductResponse struct {
	ID          any             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	InStock     bool            `json:"inStock"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
}

// ProductResponseFrom maps the entity to its storefront shape.
func ProductResponseFrom(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.FrontendID(),
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		InStock:     p.InStock,
		Stock:       p.Stock,
		Rating:      p.Rating,
	}
}

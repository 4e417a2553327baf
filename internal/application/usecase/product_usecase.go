package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/domain/repository"
)

const similarProductsLimit = 4

// ProductUseCase covers catalog reads plus the admin CRUD operations.
type ProductUseCase struct {
	products repository.ProductRepository
}

func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// List returns the catalog, optionally filtered by category and a
// case-insensitive search term. "All" is the storefront's no-category value.
func (uc *ProductUseCase) List(ctx context.Context, category, search string) ([]*entity.Product, error) {
	if strings.EqualFold(category, "All") {
		category = ""
	}
	return uc.products.List(ctx, repository.ProductFilter{
		Category: category,
		Search:   strings.TrimSpace(search),
	})
}

// GetByRef resolves a product by its stable numeric catalog id first, falling
// back to the opaque storage id. A reference that is neither yields not found
// rather than an error.
func (uc *ProductUseCase) GetByRef(ctx context.Context, ref string) (*entity.Product, error) {
	if n, err := strconv.ParseInt(ref, 10, 64); err == nil {
		p, err := uc.products.GetByProductID(ctx, n)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	if _, err := uuid.Parse(ref); err != nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.products.GetByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Similar returns up to four other products from the same category, newest
// first.
func (uc *ProductUseCase) Similar(ctx context.Context, ref string) ([]*entity.Product, error) {
	p, err := uc.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	return uc.products.ListSimilar(ctx, p.Category, p.ID, similarProductsLimit)
}

// Create adds a product to the catalog. When no numeric id is supplied the
// next free one is assigned so storefront carts can always reference it.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("Name is required")
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return nil, domain.Invalid("Valid price is required")
	}
	if in.Stock < 0 {
		return nil, domain.Invalid("Stock cannot be negative")
	}

	productID := in.ProductID
	if productID == nil {
		max, err := uc.products.MaxProductID(ctx)
		if err != nil {
			return nil, err
		}
		next := max + 1
		productID = &next
	}
	rating := 4.5
	if in.Rating != nil {
		rating = *in.Rating
	}

	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Name:        name,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Description: in.Description,
		Stock:       in.Stock,
		InStock:     in.Stock > 0,
		Rating:      rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update; nil fields keep their current value.
// InStock is recomputed whenever stock changes.
func (uc *ProductUseCase) Update(ctx context.Context, ref string, in dto.UpdateProductRequest) (*entity.Product, error) {
	p, err := uc.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid("Name is required")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if in.Price.IsNegative() || in.Price.IsZero() {
			return nil, domain.Invalid("Valid price is required")
		}
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.Invalid("Stock cannot be negative")
		}
		p.Stock = *in.Stock
		p.InStock = *in.Stock > 0
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	p.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product from the catalog. Existing orders keep their
// denormalized item snapshots.
func (uc *ProductUseCase) Delete(ctx context.Context, ref string) error {
	p, err := uc.GetByRef(ctx, ref)
	if err != nil {
		return err
	}
	return uc.products.Delete(ctx, p.ID)
}

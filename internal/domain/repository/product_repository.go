package repository

import (
	"context"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string // exact match; empty or "All" means no filter
	Search   string // case-insensitive substring over name and description
}

// ProductRepository is the persistence port for Product, including the
// inventory ledger operations. Reserve and Release must each run as one
// indivisible conditional storage mutation; callers never read-then-write
// stock.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByProductID(ctx context.Context, productID int64) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	ListSimilar(ctx context.Context, category, excludeID string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// MaxProductID returns the highest assigned numeric id (0 when none).
	MaxProductID(ctx context.Context) (int64, error)

	// Reserve atomically decrements stock by qty iff stock >= qty, recomputing
	// in_stock in the same statement. Returns *domain.InsufficientStockError
	// when stock is short and domain.ErrNotFound when the product is absent.
	Reserve(ctx context.Context, id string, qty int) error
	// Release is the compensating operation for Reserve. The workflow
	// coordinator guarantees at most one release per reservation.
	Release(ctx context.Context, id string, qty int) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, product_id, name, price, image, category, description, stock, in_stock, rating, created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL (usable
// with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Price, &p.Image, &p.Category,
		&p.Description, &p.Stock, &p.InStock, &p.Rating, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.ProductID, product.Name, product.Price, product.Image,
		product.Category, product.Description, product.Stock, product.InStock,
		product.Rating, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by its opaque storage id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByProductID fetches a product by its stable numeric catalog id.
func (r *ProductRepo) GetByProductID(ctx context.Context, productID int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by catalog id: %w", err)
	}
	return p, nil
}

// List returns the catalog filtered by category and search term, newest first.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListSimilar returns up to limit other products in the same category, newest
// first.
func (r *ProductRepo) ListSimilar(ctx context.Context, category, excludeID string, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE category = $1 AND id <> $2
		ORDER BY created_at DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	products := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update rewrites the mutable columns. Stock written here is the admin's
// absolute value; checkout uses Reserve/Release instead.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, image = $4, category = $5, description = $6,
		    stock = $7, in_stock = $8, rating = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Image, product.Category,
		product.Description, product.Stock, product.InStock, product.Rating, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the product row.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxProductID returns the highest assigned numeric catalog id (0 when none).
func (r *ProductRepo) MaxProductID(ctx context.Context) (int64, error) {
	var max int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(product_id), 0) FROM products`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max catalog id: %w", err)
	}
	return max, nil
}

// Reserve decrements stock by qty in a single conditional statement. The
// WHERE clause refuses the decrement when stock would go negative, so
// concurrent reservations for the last units serialize on the row and at most
// the available quantity is ever committed.
func (r *ProductRepo) Reserve(ctx context.Context, id string, qty int) error {
	query := `
		UPDATE products
		SET stock = stock - $2, in_stock = (stock - $2) > 0, updated_at = now()
		WHERE id = $1 AND stock >= $2`
	cmd, err := r.q.Exec(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// No row updated: either the product vanished or stock was short.
	var name string
	var stock int
	err = r.q.QueryRow(ctx, `SELECT name, stock FROM products WHERE id = $1`, id).Scan(&name, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("reserve stock lookup: %w", err)
	}
	return &domain.InsufficientStockError{ProductName: name, Available: stock, Requested: qty}
}

// Release is the compensating increment for Reserve.
func (r *ProductRepo) Release(ctx context.Context, id string, qty int) error {
	query := `
		UPDATE products
		SET stock = stock + $2, in_stock = (stock + $2) > 0, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

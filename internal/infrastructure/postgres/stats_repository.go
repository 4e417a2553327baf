package postgres

import (
	"context"
	"fmt"

	"github.com/shophub/shophub-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// Products with stock below this count as low stock on the dashboard.
const lowStockThreshold = 10

// StatsRepo serves the admin dashboard aggregates straight from SQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository builds the stats adapter. Pass pool or tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Collect gathers every dashboard aggregate in one round trip.
func (r *StatsRepo) Collect(ctx context.Context) (*repository.StoreStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM orders WHERE payment_status = 'paid'), 0) AS total_revenue,
			(SELECT COUNT(*) FROM orders)                                              AS total_orders,
			(SELECT COUNT(*) FROM products)                                            AS total_products,
			(SELECT COUNT(*) FROM orders WHERE payment_status = 'paid')                AS paid_orders,
			(SELECT COUNT(*) FROM products WHERE stock < $1)                           AS low_stock_products`
	var s repository.StoreStats
	err := r.q.QueryRow(ctx, query, lowStockThreshold).Scan(
		&s.TotalRevenue, &s.TotalOrders, &s.TotalProducts, &s.PaidOrders, &s.LowStockProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("collect store stats: %w", err)
	}
	return &s, nil
}

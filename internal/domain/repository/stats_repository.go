package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StoreStats are the admin dashboard aggregates.
type StoreStats struct {
	TotalRevenue     decimal.Decimal // sum of totals over paid orders
	TotalOrders      int64
	TotalProducts    int64
	PaidOrders       int64
	LowStockProducts int64 // stock below the low-stock threshold
}

// StatsRepository provides read-only aggregate queries for the admin panel.
type StatsRepository interface {
	Collect(ctx context.Context) (*StoreStats, error)
}

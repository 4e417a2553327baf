package dto

import "github.com/shopspring/decimal"

// StatsResponse is the admin dashboard aggregate view.
type StatsResponse struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int64           `json:"totalOrders"`
	TotalProducts    int64           `json:"totalProducts"`
	PaidOrders       int64           `json:"paidOrders"`
	LowStockProducts int64           `json:"lowStockProducts"`
}

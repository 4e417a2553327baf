package usecase

import (
	"context"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/domain/repository"
)

// StatsUseCase exposes the admin dashboard aggregates.
type StatsUseCase struct {
	stats repository.StatsRepository
}

func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// Dashboard returns revenue and count aggregates for the store.
func (uc *StatsUseCase) Dashboard(ctx context.Context) (*dto.StatsResponse, error) {
	s, err := uc.stats.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalRevenue:     s.TotalRevenue,
		TotalOrders:      s.TotalOrders,
		TotalProducts:    s.TotalProducts,
		PaidOrders:       s.PaidOrders,
		LowStockProducts: s.LowStockProducts,
	}, nil
}

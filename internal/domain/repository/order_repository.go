package repository

import (
	"context"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// OrderRepository is the persistence port for Order. Listings return orders
// newest-first by creation time. Access control is enforced by the caller,
// not here.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	// AppendStatus sets the new status, optionally replaces the tracking
	// number (empty keeps the current one), and appends entry to the status
	// history with an atomic array append. Returns the updated order.
	AppendStatus(ctx context.Context, id, status, trackingNumber string, entry entity.StatusEntry) (*entity.Order, error)
}

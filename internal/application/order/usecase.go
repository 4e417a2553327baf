package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/domain/repository"
)

// UseCase covers order reads and the admin status-update operation. Checkout
// lives in CreateOrderUseCase.
type UseCase struct {
	orders   repository.OrderRepository
	receipts ReceiptGenerator
}

func NewUseCase(orders repository.OrderRepository, receipts ReceiptGenerator) *UseCase {
	return &UseCase{orders: orders, receipts: receipts}
}

// List returns the caller's orders, or every order when the caller is an
// admin. Newest first.
func (uc *UseCase) List(ctx context.Context, userID string, isAdmin bool) ([]*entity.Order, error) {
	if isAdmin {
		return uc.orders.ListAll(ctx)
	}
	return uc.orders.ListByUser(ctx, userID)
}

// Get returns one order. Non-admin callers can only read their own.
func (uc *UseCase) Get(ctx context.Context, id, userID string, isAdmin bool) (*entity.Order, error) {
	o, err := uc.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// UpdateStatus appends a history entry and moves the order to the new status.
// Tracking number is only overwritten when a non-empty one is supplied.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*entity.Order, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.Invalid("Invalid status")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	note := in.Note
	if note == "" {
		note = fmt.Sprintf("Order status updated to %s", in.Status)
	}
	entry := entity.StatusEntry{Status: in.Status, Date: time.Now(), Note: note}
	o, err := uc.orders.AppendStatus(ctx, id, in.Status, in.TrackingNumber, entry)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// Receipt renders the order's PDF receipt, with the same access rule as Get.
func (uc *UseCase) Receipt(ctx context.Context, id, userID string, isAdmin bool) ([]byte, error) {
	o, err := uc.Get(ctx, id, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateOrderReceipt(o)
}

func (uc *UseCase) fetch(ctx context.Context, id string) (*entity.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

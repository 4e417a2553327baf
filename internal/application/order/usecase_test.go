package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/application/order"
	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
)

type fakeReceipts struct{ called bool }

func (r *fakeReceipts) GenerateOrderReceipt(*entity.Order) ([]byte, error) {
	r.called = true
	return []byte("%PDF-1.7"), nil
}

func seededOrder(userID string) *entity.Order {
	now := time.Now()
	return &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		UserEmail:     "ada@example.com",
		Items:         []entity.OrderItem{{ID: 1, Name: "Wireless Bluetooth Headphones", Price: decimal.NewFromFloat(79.99), Quantity: 1}},
		Shipping:      testShipping(),
		Total:         decimal.NewFromFloat(79.99),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPaid,
		StatusHistory: []entity.StatusEntry{{Status: entity.OrderStatusPending, Date: now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newOrderFixture(t *testing.T, orders ...*entity.Order) (*order.UseCase, *fakeOrderRepo, *fakeReceipts) {
	t.Helper()
	repo := &fakeOrderRepo{orders: orders}
	receipts := &fakeReceipts{}
	return order.NewUseCase(repo, receipts), repo, receipts
}

// ──────────────────────────────────────────────────────────────────────────────
// Access control
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_OwnerAllowed(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, _ := newOrderFixture(t, o)

	got, err := uc.Get(context.Background(), o.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestGet_StrangerForbidden(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, _ := newOrderFixture(t, o)

	_, err := uc.Get(context.Background(), o.ID, "user-2", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet_AdminAllowed(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, _ := newOrderFixture(t, o)

	got, err := uc.Get(context.Background(), o.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestGet_MalformedIDIsNotFound(t *testing.T) {
	uc, _, _ := newOrderFixture(t)
	_, err := uc.Get(context.Background(), "not-a-uuid", "user-1", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OwnVsAll(t *testing.T) {
	o1 := seededOrder("user-1")
	o2 := seededOrder("user-2")
	uc, _, _ := newOrderFixture(t, o1, o2)

	own, err := uc.List(context.Background(), "user-1", false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, o1.ID, own[0].ID)

	all, err := uc.List(context.Background(), "admin-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Status updates
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_AppendsHistoryChronologically(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, _ := newOrderFixture(t, o)

	got, err := uc.UpdateStatus(context.Background(), o.ID, dto.UpdateOrderStatusRequest{
		Status:         entity.OrderStatusShipped,
		TrackingNumber: "TRK123ABCD",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusShipped, got.Status)
	assert.Equal(t, "TRK123ABCD", got.TrackingNumber)
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, entity.OrderStatusPending, got.StatusHistory[0].Status)
	assert.Equal(t, entity.OrderStatusShipped, got.StatusHistory[1].Status)
	assert.Equal(t, "Order status updated to shipped", got.StatusHistory[1].Note)
	assert.False(t, got.StatusHistory[1].Date.Before(got.StatusHistory[0].Date))
}

func TestUpdateStatus_CustomNoteKept(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, _ := newOrderFixture(t, o)

	got, err := uc.UpdateStatus(context.Background(), o.ID, dto.UpdateOrderStatusRequest{
		Status: entity.OrderStatusProcessing,
		Note:   "Packing in progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "Packing in progress", got.StatusHistory[len(got.StatusHistory)-1].Note)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	o := seededOrder("user-1")
	uc, repo, _ := newOrderFixture(t, o)

	_, err := uc.UpdateStatus(context.Background(), o.ID, dto.UpdateOrderStatusRequest{Status: "teleported"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// History untouched
	stored, _ := repo.GetByID(context.Background(), o.ID)
	assert.Len(t, stored.StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	uc, _, _ := newOrderFixture(t)
	_, err := uc.UpdateStatus(context.Background(), uuid.New().String(), dto.UpdateOrderStatusRequest{
		Status: entity.OrderStatusShipped,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipts
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_SameAccessRuleAsGet(t *testing.T) {
	o := seededOrder("user-1")
	uc, _, receipts := newOrderFixture(t, o)

	_, err := uc.Receipt(context.Background(), o.ID, "user-2", false)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, receipts.called)

	data, err := uc.Receipt(context.Background(), o.ID, "user-1", false)
	require.NoError(t, err)
	assert.True(t, receipts.called)
	assert.NotEmpty(t, data)
}

var _ order.ReceiptGenerator = (*fakeReceipts)(nil)

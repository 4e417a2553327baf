package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/application/payment"
	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/domain/repository"
	"github.com/shophub/shophub-api/pkg/logger"
)

// Mock payment references bypass real gateway verification and are treated as
// immediately paid. Honored only when AllowMockPayments is set
// (non-production).
var mockPaymentPrefixes = []string{"pi_mock_", "pay_mock_", "pay_test_"}

func isMockPaymentRef(ref string) bool {
	for _, p := range mockPaymentPrefixes {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// CreateOrderUseCase coordinates the order placement workflow:
// validation, stock reservation, payment verification, persistence and
// notification, with compensation (stock release) when a step after
// reservation fails. Within one attempt, reservations are committed before
// payment is verified and payment is verified before the order is written,
// so a persisted order always reflects a real reservation.
type CreateOrderUseCase struct {
	products          repository.ProductRepository
	orders            repository.OrderRepository
	gateway           payment.Gateway
	mailer            Mailer
	allowMockPayments bool
	log               *logger.Logger
}

// NewCreateOrderUseCase builds the workflow coordinator.
func NewCreateOrderUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	gateway payment.Gateway,
	mailer Mailer,
	allowMockPayments bool,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		products:          products,
		orders:            orders,
		gateway:           gateway,
		mailer:            mailer,
		allowMockPayments: allowMockPayments,
		log:               log,
	}
}

// reservation records one committed stock decrement so it can be released if
// a later step fails. At most one release per reservation.
type reservation struct {
	productID string
	qty       int
}

// Create runs the full workflow and returns the persisted order.
func (uc *CreateOrderUseCase) Create(ctx context.Context, userID, userEmail string, in dto.CreateOrderRequest) (*entity.Order, error) {
	// Validating: no side effects yet.
	if len(in.Items) == 0 {
		return nil, domain.Invalid("Items are required")
	}
	if !in.Total.GreaterThan(decimal.Zero) {
		return nil, domain.Invalid("Valid total is required")
	}
	if !in.Shipping.Complete() {
		return nil, domain.Invalid("Shipping information is required")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.Invalid(fmt.Sprintf("Invalid quantity for %q", item.Name))
		}
	}

	// Reserving: one atomic conditional decrement per line item. Any failure
	// releases every reservation already taken in this attempt, so no partial
	// stock commitment is ever left outstanding.
	var reserved []reservation
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		product, err := uc.resolveProduct(ctx, item.ID)
		if err != nil {
			uc.releaseAll(ctx, reserved)
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.NotFoundError{Msg: fmt.Sprintf("Product %q not found", item.Name)}
			}
			return nil, err
		}
		if err := uc.products.Reserve(ctx, product.ID, item.Quantity); err != nil {
			uc.releaseAll(ctx, reserved)
			return nil, err
		}
		reserved = append(reserved, reservation{productID: product.ID, qty: item.Quantity})
		items = append(items, snapshotItem(item, product))
	}

	// Verifying: resolve the payment status before anything is persisted.
	paymentStatus, err := uc.verifyPayment(ctx, strings.TrimSpace(in.PaymentIntentID))
	if err != nil {
		uc.releaseAll(ctx, reserved)
		return nil, err
	}

	// Persisting: tracking number, initial history entry, single durable write.
	tracking, err := NewTrackingNumber()
	if err != nil {
		uc.releaseAll(ctx, reserved)
		return nil, err
	}
	now := time.Now()
	o := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		UserEmail:       userEmail,
		Items:           items,
		Shipping:        in.Shipping,
		Total:           in.Total,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: strings.TrimSpace(in.PaymentIntentID),
		TrackingNumber:  tracking,
		StatusHistory: []entity.StatusEntry{{
			Status: entity.OrderStatusPending,
			Date:   now,
			Note:   "Order placed and payment confirmed",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		uc.releaseAll(ctx, reserved)
		return nil, fmt.Errorf("persist order: %w", err)
	}

	// Notifying: best-effort, never undoes the persisted order.
	uc.notify(ctx, o)

	return o, nil
}

// verifyPayment maps the payment reference to the order's initial payment
// status or fails the attempt. A gateway status that is neither settled nor
// failed leaves the order created with paymentStatus pending, to be
// reconciled later.
func (uc *CreateOrderUseCase) verifyPayment(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", domain.ErrPaymentRequired
	}
	if uc.allowMockPayments && isMockPaymentRef(ref) {
		return entity.PaymentStatusPaid, nil
	}
	if uc.gateway == nil || !uc.gateway.Configured() {
		return "", domain.ErrPaymentUnavailable
	}

	p, err := uc.gateway.FetchPayment(ctx, ref)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return "", domain.ErrPaymentUnavailable
		}
		uc.log.Warn().Err(err).Str("payment_intent", ref).Msg("payment lookup failed")
		return "", &domain.PaymentFailedError{
			Msg: "Failed to verify payment. Please contact support if payment was charged.",
		}
	}
	switch p.Status {
	case payment.StatusAuthorized, payment.StatusCaptured:
		return entity.PaymentStatusPaid, nil
	case payment.StatusFailed:
		return "", &domain.PaymentFailedError{Msg: "Payment failed. Please try again."}
	default:
		return entity.PaymentStatusPending, nil
	}
}

// resolveProduct looks a product up by stable numeric id first, then by
// opaque storage id. A malformed opaque id means not found, not an error.
func (uc *CreateOrderUseCase) resolveProduct(ctx context.Context, ref dto.ProductRef) (*entity.Product, error) {
	if n, ok := ref.Numeric(); ok {
		p, err := uc.products.GetByProductID(ctx, n)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	if _, err := uuid.Parse(ref.String()); err != nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.products.GetByID(ctx, ref.String())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// snapshotItem denormalizes a cart line into the order document, preferring
// the catalog's numeric id over whatever the client sent.
func snapshotItem(item dto.OrderItemRequest, product *entity.Product) entity.OrderItem {
	id, ok := item.ID.Numeric()
	if !ok && product.ProductID != nil {
		id = *product.ProductID
	}
	name := item.Name
	if name == "" {
		name = product.Name
	}
	return entity.OrderItem{
		ID:       id,
		Name:     name,
		Price:    item.Price,
		Quantity: item.Quantity,
		Image:    item.Image,
	}
}

// releaseAll compensates every reservation committed in this attempt. Runs on
// a cancel-free context so a dropped client connection cannot leak stock.
func (uc *CreateOrderUseCase) releaseAll(ctx context.Context, reserved []reservation) {
	ctx = context.WithoutCancel(ctx)
	for _, r := range reserved {
		if err := uc.products.Release(ctx, r.productID, r.qty); err != nil {
			uc.log.Error().Err(err).
				Str("product_id", r.productID).
				Int("quantity", r.qty).
				Msg("stock release failed during compensation")
		}
	}
}

// notify sends the confirmation email and swallows any failure.
func (uc *CreateOrderUseCase) notify(ctx context.Context, o *entity.Order) {
	if uc.mailer == nil {
		return
	}
	if err := uc.mailer.SendOrderConfirmation(context.WithoutCancel(ctx), o); err != nil {
		uc.log.Error().Err(err).
			Str("order", entity.ShortID(o.ID)).
			Msg("order confirmation email failed")
		return
	}
	uc.log.Info().Str("order", entity.ShortID(o.ID)).Msg("order confirmation email sent")
}

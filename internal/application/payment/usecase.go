package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/domain"
)

// DefaultCurrency is used when the client omits the currency code.
const DefaultCurrency = "INR"

// UseCase exposes the two payment endpoints: intent creation before checkout
// and signature verification after the gateway callback.
type UseCase struct {
	gateway Gateway
}

// NewUseCase builds the payment use case.
func NewUseCase(gateway Gateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// CreateIntent registers the amount with the gateway and returns the intent
// the client completes payment against.
func (uc *UseCase) CreateIntent(ctx context.Context, in dto.CreateIntentRequest) (*dto.IntentResponse, error) {
	if !uc.gateway.Configured() {
		return nil, domain.ErrPaymentUnavailable
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.Invalid("Valid amount is required")
	}
	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	intent, err := uc.gateway.CreateIntent(ctx, in.Amount, currency)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return nil, domain.ErrPaymentUnavailable
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &dto.IntentResponse{
		OrderID:  intent.OrderID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
		KeyID:    intent.KeyID,
	}, nil
}

// Verify checks the gateway signature and, once it passes, fetches the
// payment details. A signature mismatch is a client error; a lookup failure
// after a valid signature is an internal one.
func (uc *UseCase) Verify(ctx context.Context, in dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return nil, domain.Invalid("Payment verification data is required")
	}
	if !uc.gateway.Configured() {
		return nil, domain.ErrPaymentUnavailable
	}

	if !uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		return nil, &domain.PaymentFailedError{Msg: "Payment verification failed: Invalid signature"}
	}

	p, err := uc.gateway.FetchPayment(ctx, in.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment details: %w", err)
	}
	return &dto.VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified successfully",
		Payment: dto.PaymentDetails{
			ID:       p.ID,
			Status:   p.Status,
			Amount:   p.Amount,
			Currency: p.Currency,
		},
	}, nil
}

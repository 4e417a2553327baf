package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Gateway payment statuses this application reacts to. Any other status is
// treated as "still pending" and reconciled later.
const (
	StatusAuthorized = "authorized"
	StatusCaptured   = "captured"
	StatusFailed     = "failed"
)

// Errors the gateway adapter reports. ErrNotConfigured is returned without a
// network call when credentials are absent; ErrTimeout distinguishes a hung
// gateway from a rejecting one.
var (
	ErrNotConfigured = errors.New("payment gateway not configured")
	ErrTimeout       = errors.New("payment gateway request timed out")
)

// Intent is a gateway-side record representing an amount to be collected,
// created before the payer completes payment. Amount is in the smallest
// currency unit.
type Intent struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

// Payment is the gateway's view of a completed (or failed) payment.
type Payment struct {
	ID       string
	Status   string
	Amount   int64
	Currency string
}

// Gateway is the outbound port to the payment provider. The concrete
// implementation talks HTTP; tests inject a fake.
type Gateway interface {
	// Configured reports whether gateway credentials are present.
	Configured() bool
	// CreateIntent registers amount (converted to the smallest currency unit)
	// with the gateway. Rejects non-positive amounts.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error)
	// FetchPayment looks up the current status of a payment.
	FetchPayment(ctx context.Context, paymentID string) (*Payment, error)
	// VerifySignature checks the HMAC-SHA256 signature over
	// "orderID|paymentID" in constant time.
	VerifySignature(orderID, paymentID, signature string) bool
}

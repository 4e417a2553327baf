package dto

import "github.com/shopspring/decimal"

// CreateIntentRequest payload for POST /api/create-order.
type CreateIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// IntentResponse is the gateway-side order the client completes payment
// against. Amount is in the smallest currency unit.
type IntentResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest payload for POST /api/verify-payment. Field names
// follow the gateway's checkout callback.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// PaymentDetails is the verified payment summary.
type PaymentDetails struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentResponse is returned on successful verification.
type VerifyPaymentResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Payment PaymentDetails `json:"payment"`
}

package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shophub-api/internal/application/payment"
	"github.com/shophub/shophub-api/internal/infrastructure/razorpay"
)

const (
	testKeyID     = "rzp_test_key"
	testKeySecret = "rzp_test_secret"
)

// ──────────────────────────────────────────────────────────────────────────────
// Signature verification
//
// Known vector: hex HMAC-SHA256 of "order_ABC123|pay_XYZ789" keyed with
// "rzp_test_secret". If the concatenation order, the separator or the
// encoding ever changes, this test fails immediately.
// ──────────────────────────────────────────────────────────────────────────────

const testSignature = "7ecf420b62aca4b2ca03b4cdb2df2ade2600feeb9faca41d3258f07be04b9f5b"

func TestVerifySignature_KnownVector(t *testing.T) {
	c := razorpay.NewClient(testKeyID, testKeySecret)
	assert.True(t, c.VerifySignature("order_ABC123", "pay_XYZ789", testSignature))
}

func TestVerifySignature_SingleCharMutationRejected(t *testing.T) {
	c := razorpay.NewClient(testKeyID, testKeySecret)
	mutated := "8" + testSignature[1:]
	assert.False(t, c.VerifySignature("order_ABC123", "pay_XYZ789", mutated))
}

func TestVerifySignature_WrongOrderID(t *testing.T) {
	c := razorpay.NewClient(testKeyID, testKeySecret)
	assert.False(t, c.VerifySignature("order_OTHER", "pay_XYZ789", testSignature))
}

func TestVerifySignature_Unconfigured(t *testing.T) {
	c := razorpay.NewClient("", "")
	assert.False(t, c.VerifySignature("order_ABC123", "pay_XYZ789", testSignature))
}

// ──────────────────────────────────────────────────────────────────────────────
// Remote calls
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateIntent_ScalesToSmallestUnit(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, testKeyID, user)
		require.Equal(t, testKeySecret, pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"id": "order_created1", "amount": gotBody["amount"], "currency": "INR", "status": "created",
		})
	}))
	defer srv.Close()

	c := razorpay.NewClient(testKeyID, testKeySecret).WithBaseURL(srv.URL)
	intent, err := c.CreateIntent(context.Background(), decimal.NewFromFloat(499.99), "INR")
	require.NoError(t, err)

	assert.Equal(t, float64(49999), gotBody["amount"])
	assert.Equal(t, "order_created1", intent.OrderID)
	assert.Equal(t, int64(49999), intent.Amount)
	assert.Equal(t, "INR", intent.Currency)
	assert.Equal(t, testKeyID, intent.KeyID)
}

func TestFetchPayment_ReturnsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/pay_123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "pay_123", "status": "captured", "amount": 49999, "currency": "INR",
		})
	}))
	defer srv.Close()

	c := razorpay.NewClient(testKeyID, testKeySecret).WithBaseURL(srv.URL)
	p, err := c.FetchPayment(context.Background(), "pay_123")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCaptured, p.Status)
	assert.Equal(t, int64(49999), p.Amount)
}

func TestFetchPayment_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": "BAD_REQUEST_ERROR", "description": "The id provided does not exist"},
		})
	}))
	defer srv.Close()

	c := razorpay.NewClient(testKeyID, testKeySecret).WithBaseURL(srv.URL)
	_, err := c.FetchPayment(context.Background(), "pay_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The id provided does not exist")
}

// Without credentials no network call is attempted.
func TestRemoteCalls_UnconfiguredFailFast(t *testing.T) {
	c := razorpay.NewClient("", "")

	_, err := c.CreateIntent(context.Background(), decimal.NewFromInt(100), "INR")
	assert.ErrorIs(t, err, payment.ErrNotConfigured)

	_, err = c.FetchPayment(context.Background(), "pay_123")
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}

package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// ProductRef identifies a product by either its stable numeric catalog id or
// its opaque storage id. Carts created from the seeded catalog send numbers;
// admin-created products without a numeric id send the opaque id as a string.
type ProductRef string

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (r *ProductRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ProductRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = ProductRef(n.String())
	return nil
}

// Numeric returns the reference as a catalog id when it parses as one.
func (r ProductRef) Numeric() (int64, bool) {
	n, err := strconv.ParseInt(string(r), 10, 64)
	return n, err == nil
}

func (r ProductRef) String() string { return string(r) }

// OrderItemRequest is one cart line in the checkout payload.
type OrderItemRequest struct {
	ID       ProductRef      `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

// CreateOrderRequest payload for POST /api/orders.
type CreateOrderRequest struct {
	Items           []OrderItemRequest  `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Shipping        entity.ShippingInfo `json:"shipping"`
	PaymentIntentID string              `json:"paymentIntentId"`
}

// UpdateOrderStatusRequest payload for PUT /api/orders/:id/status (admin).
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	Note           string `json:"note"`
}

// OrderResponse is the external representation of an order. ID is the short
// human-readable order number.
type OrderResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	UserEmail       string               `json:"userEmail"`
	Items           []entity.OrderItem   `json:"items"`
	Shipping        entity.ShippingInfo  `json:"shipping"`
	Total           decimal.Decimal      `json:"total"`
	Date            time.Time            `json:"date"`
	Status          string               `json:"status"`
	PaymentStatus   string               `json:"paymentStatus"`
	PaymentIntentID string               `json:"paymentIntentId,omitempty"`
	TrackingNumber  string               `json:"trackingNumber,omitempty"`
	StatusHistory   []entity.StatusEntry `json:"statusHistory"`
}

// OrderResponseFrom maps the entity to its external shape.
func OrderResponseFrom(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:              entity.ShortID(o.ID),
		UserID:          o.UserID,
		UserEmail:       o.UserEmail,
		Items:           o.Items,
		Shipping:        o.Shipping,
		Total:           o.Total,
		Date:            o.CreatedAt,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		PaymentIntentID: o.PaymentIntentID,
		TrackingNumber:  o.TrackingNumber,
		StatusHistory:   o.StatusHistory,
	}
}

package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// ValidOrderStatus reports whether s is one of the five lifecycle statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a denormalized snapshot of a product line at checkout time.
// The json tags double as the JSONB storage shape.
type OrderItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

// ShippingInfo is the address snapshot taken at checkout.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Complete reports whether every shipping field is populated.
func (s ShippingInfo) Complete() bool {
	for _, f := range []string{s.FirstName, s.LastName, s.Address, s.City, s.ZipCode, s.Email, s.Phone} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// StatusEntry is one append-only record in an order's status history.
type StatusEntry struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// Order is created once at checkout. Status, TrackingNumber and StatusHistory
// are mutated only by the status-update operation; orders are never deleted.
type Order struct {
	ID              string // opaque storage id (UUID)
	UserID          string
	UserEmail       string
	Items           []OrderItem
	Shipping        ShippingInfo
	Total           decimal.Decimal
	Status          string
	PaymentStatus   string
	PaymentIntentID string
	TrackingNumber  string
	StatusHistory   []StatusEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ShortID returns the human-readable order number shown to customers: the
// last six hex characters of an opaque id.
func ShortID(id string) string {
	s := strings.ReplaceAll(id, "-", "")
	if len(s) <= 6 {
		return s
	}
	return s[len(s)-6:]
}

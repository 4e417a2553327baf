package email_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/infrastructure/email"
	"github.com/shophub/shophub-api/pkg/config"
	"github.com/shophub/shophub-api/pkg/logger"
)

func confirmationOrder() *entity.Order {
	return &entity.Order{
		ID:        "a1b2c3d4-0000-0000-0000-00000abcdef0",
		UserEmail: "ada@example.com",
		Items: []entity.OrderItem{
			{ID: 1, Name: "Wireless Bluetooth Headphones", Price: decimal.NewFromFloat(79.99), Quantity: 2},
			{ID: 5, Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(129.99), Quantity: 1},
		},
		Shipping: entity.ShippingInfo{
			FirstName: "Ada", LastName: "Lovelace",
			Address: "12 Analytical St", City: "London", ZipCode: "SW1A",
			Email: "ada@example.com", Phone: "5551234",
		},
		Total:          decimal.NewFromFloat(289.97),
		PaymentStatus:  entity.PaymentStatusPaid,
		TrackingNumber: "TRK123456789000AAA",
		CreatedAt:      time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderOrderConfirmationText(t *testing.T) {
	body := email.RenderOrderConfirmationText(confirmationOrder())

	assert.Contains(t, body, "Order Number: #bcdef0")
	assert.Contains(t, body, "Order Date: March 14, 2026")
	assert.Contains(t, body, "Total: ₹289.97")
	assert.Contains(t, body, "Payment Status: paid")
	assert.Contains(t, body, "- Wireless Bluetooth Headphones x2 - ₹79.99")
	assert.Contains(t, body, "- Mechanical Keyboard x1 - ₹129.99")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "London, SW1A")
	assert.Contains(t, body, "Tracking Number: TRK123456789000AAA")
}

func TestRenderOrderConfirmationHTML_EscapesUserInput(t *testing.T) {
	o := confirmationOrder()
	o.Items[0].Name = `<script>alert("x")</script>`
	o.Shipping.FirstName = "A&B"

	body := email.RenderOrderConfirmationHTML(o)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "A&amp;B")
}

// Without SMTP credentials sending is a silent success so checkout never
// depends on a mail account.
func TestSendOrderConfirmation_UnconfiguredIsNoop(t *testing.T) {
	m := email.NewMailer(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, logger.Nop())
	err := m.SendOrderConfirmation(context.Background(), confirmationOrder())
	require.NoError(t, err)
}

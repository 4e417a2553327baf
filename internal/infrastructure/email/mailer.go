package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/shophub/shophub-api/internal/application/order"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/pkg/config"
	"github.com/shophub/shophub-api/pkg/logger"
)

var _ order.Mailer = (*Mailer)(nil)

// Mailer sends transactional mail over SMTP. Without credentials it degrades
// to a logged no-op so checkout keeps working in environments with no mail
// account.
type Mailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewMailer builds the mailer.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) configured() bool {
	return m.cfg.User != "" && m.cfg.Password != ""
}

// SendOrderConfirmation mails the order summary to the shipping email.
func (m *Mailer) SendOrderConfirmation(ctx context.Context, o *entity.Order) error {
	if !m.configured() {
		m.log.Info().
			Str("order", entity.ShortID(o.ID)).
			Msg("SMTP not configured, skipping order confirmation email")
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", o.Shipping.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - ShopHub", entity.ShortID(o.ID)))
	msg.SetBody("text/plain", RenderOrderConfirmationText(o))
	msg.AddAlternative("text/html", RenderOrderConfirmationHTML(o))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(msg) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send order confirmation: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RenderOrderConfirmationText renders the plain-text body.
func RenderOrderConfirmationText(o *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order!\n\n")
	fmt.Fprintf(&b, "Order Number: #%s\n", entity.ShortID(o.ID))
	fmt.Fprintf(&b, "Order Date: %s\n", o.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Total: ₹%s\n", o.Total.StringFixed(2))
	fmt.Fprintf(&b, "Payment Status: %s\n\n", o.PaymentStatus)
	fmt.Fprintf(&b, "Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s x%d - ₹%s\n", item.Name, item.Quantity, item.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nShipping To:\n%s %s\n%s\n%s, %s\n",
		o.Shipping.FirstName, o.Shipping.LastName,
		o.Shipping.Address, o.Shipping.City, o.Shipping.ZipCode)
	if o.TrackingNumber != "" {
		fmt.Fprintf(&b, "\nTracking Number: %s\n", o.TrackingNumber)
	}
	return b.String()
}

// RenderOrderConfirmationHTML renders the HTML body.
func RenderOrderConfirmationHTML(o *entity.Order) string {
	var items strings.Builder
	for _, item := range o.Items {
		fmt.Fprintf(&items, "<li>%s x%d - ₹%s</li>",
			html.EscapeString(item.Name), item.Quantity, item.Price.StringFixed(2))
	}
	return fmt.Sprintf(`<h2>Thank you for your order!</h2>
<p><strong>Order Number:</strong> #%s<br>
<strong>Order Date:</strong> %s<br>
<strong>Total:</strong> ₹%s<br>
<strong>Payment Status:</strong> %s</p>
<h3>Items</h3>
<ul>%s</ul>
<h3>Shipping To</h3>
<p>%s %s<br>%s<br>%s, %s</p>%s`,
		entity.ShortID(o.ID),
		o.CreatedAt.Format("January 2, 2006"),
		o.Total.StringFixed(2),
		html.EscapeString(o.PaymentStatus),
		items.String(),
		html.EscapeString(o.Shipping.FirstName), html.EscapeString(o.Shipping.LastName),
		html.EscapeString(o.Shipping.Address),
		html.EscapeString(o.Shipping.City), html.EscapeString(o.Shipping.ZipCode),
		trackingHTML(o.TrackingNumber),
	)
}

func trackingHTML(tn string) string {
	if tn == "" {
		return ""
	}
	return fmt.Sprintf("\n<p><strong>Tracking Number:</strong> %s</p>", html.EscapeString(tn))
}

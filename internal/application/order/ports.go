package order

import (
	"context"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// Mailer is the outbound port for order confirmation email. Sending is
// best-effort: the workflow never fails an order over a mail error.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, o *entity.Order) error
}

// ReceiptGenerator renders the printable receipt for a persisted order.
type ReceiptGenerator interface {
	GenerateOrderReceipt(o *entity.Order) ([]byte, error)
}

package ports

import (
	"context"

	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
)

// Orders is the delegated order capability the gateway fronts. Both
// operations return the upstream response as a raw JSON-encoded string;
// the caller is responsible for parsing it. Failures are signalled by a
// non-nil error, never encoded into the returned string.
type Orders interface {
	CreateOrder(ctx context.Context, items []entity.LineItem, customerEmail, financialStatus string, test bool) (string, error)
	GetOrderStatus(ctx context.Context, orderID int64) (string, error)
}

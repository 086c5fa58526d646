package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
	"github.com/shopmcp/order-gateway/internal/gateway/core/ports"
)

// Ensure fakeOrders implements the port at compile time.
var _ ports.Orders = (*fakeOrders)(nil)

// fakeOrders is an in-memory implementation of ports.Orders intended for
// local development and manual testing only. Do NOT use in production.
type fakeOrders struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]string
}

// NewFakeOrders returns an in-memory Orders capability for development.
func NewFakeOrders() ports.Orders {
	return &fakeOrders{
		nextID: 1001,
		orders: make(map[int64]string),
	}
}

func (f *fakeOrders) CreateOrder(ctx context.Context, items []entity.LineItem, customerEmail, financialStatus string, test bool) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	total := 0.0
	lineItems := make([]map[string]any, 0, len(items))
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
		lineItems = append(lineItems, map[string]any{
			"variant_id": it.VariantID,
			"quantity":   it.Quantity,
			"title":      it.Title,
			"price":      it.UnitPrice,
		})
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.mu.Unlock()

	order := map[string]any{
		"order": map[string]any{
			"id":               id,
			"name":             fmt.Sprintf("#%d", id),
			"checkout_token":   uuid.NewString(),
			"email":            customerEmail,
			"financial_status": financialStatus,
			"test":             test,
			"total_price":      total,
			"line_items":       lineItems,
			"created_at":       now,
		},
	}

	raw, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("fake orders: encode order: %w", err)
	}

	f.mu.Lock()
	f.orders[id] = string(raw)
	f.mu.Unlock()

	return string(raw), nil
}

func (f *fakeOrders) GetOrderStatus(ctx context.Context, orderID int64) (string, error) {
	f.mu.Lock()
	raw, ok := f.orders[orderID]
	f.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("fake orders: order %d not found", orderID)
	}
	return raw, nil
}

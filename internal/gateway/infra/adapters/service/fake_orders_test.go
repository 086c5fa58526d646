package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestFakeOrdersRoundTrip(t *testing.T) {
	orders := NewFakeOrders()

	raw, err := orders.CreateOrder(context.Background(),
		[]entity.LineItem{
			{VariantID: 12345, Quantity: 2, Title: "Widget", UnitPrice: 9.99},
		},
		"customer@example.com", "paid", true,
	)
	require.NoError(t, err)

	var created map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &created))
	order := created["order"].(map[string]any)

	require.Equal(t, "customer@example.com", order["email"])
	require.Equal(t, "paid", order["financial_status"])
	require.Equal(t, true, order["test"])
	require.InDelta(t, 19.98, order["total_price"], 1e-9)
	require.NotEmpty(t, order["checkout_token"])

	items := order["line_items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "Widget", items[0].(map[string]any)["title"])

	// The created order is retrievable by its numeric ID.
	id := int64(order["id"].(float64))
	got, err := orders.GetOrderStatus(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestFakeOrdersUnknownID(t *testing.T) {
	orders := NewFakeOrders()

	_, err := orders.GetOrderStatus(context.Background(), 404404)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

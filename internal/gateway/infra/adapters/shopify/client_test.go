package shopify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequestShape(t *testing.T) {
	var gotPath, gotToken string
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"order":{"id":42}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "shpat_test", "2024-01", 2*time.Second)

	raw, err := client.CreateOrder(context.Background(),
		[]entity.LineItem{{VariantID: 12345, Quantity: 1, Title: "Widget", UnitPrice: 9.99}},
		"customer@example.com", "paid", true,
	)
	require.NoError(t, err)
	require.Equal(t, `{"order":{"id":42}}`, raw)

	require.Equal(t, "/admin/api/2024-01/orders.json", gotPath)
	require.Equal(t, "shpat_test", gotToken)

	order := gotPayload["order"].(map[string]any)
	require.Equal(t, "customer@example.com", order["email"])
	require.Equal(t, "paid", order["financial_status"])
	require.Equal(t, true, order["test"])

	items := order["line_items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, map[string]any{
		"variant_id": float64(12345),
		"quantity":   float64(1),
		"title":      "Widget",
		"price":      9.99,
	}, items[0])
}

func TestGetOrderStatusPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/admin/api/2024-01/orders/999.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"order":{"id":999,"financial_status":"paid"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "shpat_test", "2024-01", 2*time.Second)

	raw, err := client.GetOrderStatus(context.Background(), 999)
	require.NoError(t, err)
	require.Equal(t, `{"order":{"id":999,"financial_status":"paid"}}`, raw)
}

func TestNon2xxBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":"Not Found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "shpat_test", "2024-01", 2*time.Second)

	_, err := client.GetOrderStatus(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
	require.Contains(t, err.Error(), "Not Found")
}

func TestUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "shpat_test", "2024-01", time.Second)

	_, err := client.GetOrderStatus(context.Background(), 1)
	require.Error(t, err)
}

// Package shopify adapts the Orders port onto the Shopify Admin REST API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
	"github.com/shopmcp/order-gateway/internal/gateway/core/ports"
)

// Ensure Client implements the port at compile time.
var _ ports.Orders = (*Client)(nil)

// Client talks to one Shopify store. Responses are returned verbatim as
// JSON strings; the gateway layer decides how to parse and wrap them.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpc      *http.Client
}

// NewClient builds a Shopify Admin API client for the given store.
// baseURL is the store origin, e.g. "https://my-store.myshopify.com".
func NewClient(baseURL, token, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		apiVersion: apiVersion,
		httpc:      &http.Client{Timeout: timeout},
	}
}

// CreateOrder submits a draft of the order to POST /admin/api/<v>/orders.json.
// The test flag is forwarded so Shopify treats the order as a dry run.
func (c *Client) CreateOrder(ctx context.Context, items []entity.LineItem, customerEmail, financialStatus string, test bool) (string, error) {
	lineItems := make([]map[string]any, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, map[string]any{
			"variant_id": it.VariantID,
			"quantity":   it.Quantity,
			"title":      it.Title,
			"price":      it.UnitPrice,
		})
	}

	payload := map[string]any{
		"order": map[string]any{
			"line_items":       lineItems,
			"email":            customerEmail,
			"financial_status": financialStatus,
			"test":             test,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("shopify: encode order payload: %w", err)
	}

	return c.do(ctx, http.MethodPost, c.endpoint("orders.json"), bytes.NewReader(body))
}

// GetOrderStatus fetches GET /admin/api/<v>/orders/<id>.json.
func (c *Client) GetOrderStatus(ctx context.Context, orderID int64) (string, error) {
	return c.do(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("orders/%d.json", orderID)), nil)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", fmt.Errorf("shopify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("shopify: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("shopify: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("shopify: %s %s: status %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return string(raw), nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL, c.apiVersion, path)
}

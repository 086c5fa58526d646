package httpx

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopmcp/order-gateway/internal/gateway/core/domain/entity"
	"github.com/shopmcp/order-gateway/internal/gateway/core/ports"
)

const serviceName = "Shopify Order Gateway HTTP API"

// Defaults applied when an optional request field is absent.
const (
	defaultTitle           = "Product"
	defaultFinancialStatus = "paid"
)

// Handler exposes the delegated order capabilities over HTTP. It performs
// structural validation, invokes the Orders port, and flattens every
// delegated-call failure into the uniform response envelope.
type Handler struct {
	orders ports.Orders
}

// NewHandler initializes the handler with the delegated Orders capability.
func NewHandler(orders ports.Orders) *Handler {
	return &Handler{orders: orders}
}

// Root describes the service and its endpoint map.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"status":  "running",
		"endpoints": map[string]string{
			"create_order":     "/api/orders/create",
			"get_order_status": "/api/orders/status",
			"health":           "/health",
		},
	})
}

// Health is a liveness probe. It never touches the delegated capabilities,
// so it reports healthy even when the upstream order service is down.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder validates the request shape, forwards the line items to the
// delegated CreateOrder capability, and returns the parsed upstream result
// in an envelope. Delegated failures are returned as HTTP 200 with
// success=false; only structural validation produces a 4xx.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body: "+err.Error())
		return
	}

	if req.LineItems == nil {
		writeValidationError(w, "line_items is required")
		return
	}
	if req.CustomerEmail == nil {
		writeValidationError(w, "customer_email is required")
		return
	}

	items := make([]entity.LineItem, 0, len(*req.LineItems))
	for i, it := range *req.LineItems {
		if it.VariantID == nil {
			writeValidationError(w, fmt.Sprintf("line_items[%d].variant_id is required", i))
			return
		}
		if it.Quantity == nil {
			writeValidationError(w, fmt.Sprintf("line_items[%d].quantity is required", i))
			return
		}
		items = append(items, entity.LineItem{
			VariantID: *it.VariantID,
			Quantity:  *it.Quantity,
			Title:     stringOr(it.Title, defaultTitle),
			UnitPrice: floatOr(it.Price, 0),
		})
	}

	financialStatus := stringOr(req.FinancialStatus, defaultFinancialStatus)
	test := boolOr(req.Test, true)

	slog.InfoContext(r.Context(), "creating order",
		"request_id", middleware.GetReqID(r.Context()),
		"customer_email", *req.CustomerEmail,
		"line_items", len(items),
		"test", test,
	)

	raw, err := h.orders.CreateOrder(r.Context(), items, *req.CustomerEmail, financialStatus, test)
	if err != nil {
		writeFailure(w, r, "create order failed", err)
		return
	}

	h.writeResult(w, r, raw)
}

// GetOrderStatus validates the request shape and forwards the lookup to the
// delegated GetOrderStatus capability. Same envelope contract as CreateOrder.
func (h *Handler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body: "+err.Error())
		return
	}

	if req.OrderID == nil {
		writeValidationError(w, "order_id is required")
		return
	}

	slog.InfoContext(r.Context(), "looking up order status",
		"request_id", middleware.GetReqID(r.Context()),
		"order_id", *req.OrderID,
	)

	raw, err := h.orders.GetOrderStatus(r.Context(), *req.OrderID)
	if err != nil {
		writeFailure(w, r, "order status lookup failed", err)
		return
	}

	h.writeResult(w, r, raw)
}

// writeResult parses the upstream JSON string and wraps it in a success
// envelope. An unparsable result counts as a delegated-call failure.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, raw string) {
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		writeFailure(w, r, "unparsable upstream response", err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// writeFailure flattens a delegated-call error into the envelope. The HTTP
// status stays 200: downstream integrations detect failure by inspecting
// the success field, not the transport status.
func writeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	errMsg := err.Error()
	writeJSON(w, http.StatusOK, Envelope{
		Success: false,
		Data:    map[string]any{},
		Error:   &errMsg,
	})
}

func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func stringOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

func floatOr(f *float64, fallback float64) float64 {
	if f != nil {
		return *f
	}
	return fallback
}

func boolOr(b *bool, fallback bool) bool {
	if b != nil {
		return *b
	}
	return fallback
}

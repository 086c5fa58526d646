package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopmcp/order-gateway/internal/gateway/infra/httpx/middlewares"
	"github.com/shopmcp/order-gateway/internal/pkg/metrics"
)

// NewRouter assembles the gateway's HTTP surface. The CORS policy is
// deliberately wide open: the original deployment serves browser clients
// from arbitrary origins and downstream integrations rely on it.
func NewRouter(handler *Handler, m *metrics.ServerMetrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.Trace)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.RecordMetrics(m))
	r.Use(middleware.Recoverer)

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/api/orders/create", handler.CreateOrder)
	r.Post("/api/orders/status", handler.GetOrderStatus)
	return r
}

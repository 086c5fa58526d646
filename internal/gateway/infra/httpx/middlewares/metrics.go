package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopmcp/order-gateway/internal/pkg/metrics"
)

// RecordMetrics counts requests and observes latency per path and status.
func RecordMetrics(m *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			m.Requests.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
			m.LatencyMS.WithLabelValues(r.URL.Path).Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}

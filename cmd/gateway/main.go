package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopmcp/order-gateway/internal/gateway/core/ports"
	"github.com/shopmcp/order-gateway/internal/gateway/infra/adapters/service"
	"github.com/shopmcp/order-gateway/internal/gateway/infra/adapters/shopify"
	"github.com/shopmcp/order-gateway/internal/gateway/infra/httpx"
	"github.com/shopmcp/order-gateway/internal/pkg/config"
	"github.com/shopmcp/order-gateway/internal/pkg/metrics"
	"github.com/shopmcp/order-gateway/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	telemetry.InitLogger()

	if cfg.TracingEnabled {
		shutdown, err := telemetry.SetupTracer(context.Background(), "order-gateway")
		if err != nil {
			log.Fatalf("tracer setup failed: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Error("tracer shutdown failed", "error", err)
			}
		}()
	}

	var orders ports.Orders
	if cfg.ShopifyToken != "" {
		orders = shopify.NewClient(cfg.ShopifyBaseURL, cfg.ShopifyToken, cfg.ShopifyAPIVersion, cfg.UpstreamTimeout)
		slog.Info("using Shopify upstream", "store", cfg.ShopifyBaseURL, "api_version", cfg.ShopifyAPIVersion)
	} else {
		orders = service.NewFakeOrders()
		slog.Warn("SHOPIFY_ACCESS_TOKEN not set, using in-memory fake orders adapter")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	handler := httpx.NewHandler(orders)
	router := httpx.NewRouter(handler, m)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("order gateway listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server failed: %v", err)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPSTREAM_TIMEOUT_MS", "")
	t.Setenv("OTEL_TRACING_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, "2024-01", cfg.ShopifyAPIVersion)
	require.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	require.False(t, cfg.TracingEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHOPIFY_STORE_URL", "https://my-store.myshopify.com/")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", " shpat_abc ")
	t.Setenv("UPSTREAM_TIMEOUT_MS", "2500")
	t.Setenv("OTEL_TRACING_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "https://my-store.myshopify.com", cfg.ShopifyBaseURL)
	require.Equal(t, "shpat_abc", cfg.ShopifyToken)
	require.Equal(t, 2500*time.Millisecond, cfg.UpstreamTimeout)
	require.True(t, cfg.TracingEnabled)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "eight thousand")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PORT")
}

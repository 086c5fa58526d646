// Package config loads the gateway's startup configuration from the
// environment. It is read once in main and passed down explicitly; nothing
// in this package is mutated after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port int

	// Shopify upstream. When AccessToken is empty the gateway falls back
	// to the in-memory fake Orders adapter.
	ShopifyBaseURL    string
	ShopifyToken      string
	ShopifyAPIVersion string
	UpstreamTimeout   time.Duration

	TracingEnabled bool
}

func Load() (Config, error) {
	port := 8000
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT must be an integer, got %q", v)
		}
		port = p
	}

	timeoutMS, err := strconv.Atoi(getenv("UPSTREAM_TIMEOUT_MS", "10000"))
	if err != nil {
		return Config{}, fmt.Errorf("config: UPSTREAM_TIMEOUT_MS must be an integer: %w", err)
	}

	return Config{
		Port:              port,
		ShopifyBaseURL:    strings.TrimRight(os.Getenv("SHOPIFY_STORE_URL"), "/"),
		ShopifyToken:      strings.TrimSpace(os.Getenv("SHOPIFY_ACCESS_TOKEN")),
		ShopifyAPIVersion: getenv("SHOPIFY_API_VERSION", "2024-01"),
		UpstreamTimeout:   time.Duration(timeoutMS) * time.Millisecond,
		TracingEnabled:    isTrue(getenv("OTEL_TRACING_ENABLED", "false")),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isTrue(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

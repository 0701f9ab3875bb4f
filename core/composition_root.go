package core

import (
	"context"

	"github.com/status-im/price-proxy/api"
	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/cache"
	"github.com/status-im/price-proxy/clock"
	"github.com/status-im/price-proxy/coingecko_prices"
	"github.com/status-im/price-proxy/config"
	"github.com/status-im/price-proxy/metrics"
	"github.com/status-im/price-proxy/ratelimit"
	"github.com/status-im/price-proxy/scheduler"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	return SetupWithClock(ctx, cfg, clock.Real{})
}

// SetupWithClock is Setup with an explicit time source for cache freshness and rate limits
func SetupWithClock(ctx context.Context, cfg *config.Config, clk clock.Clock) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := NewRegistry()

	// Create Cache service
	cacheService := cache.NewService(cfg.Cache, clk)
	registry.Register("cache", cacheService)

	// Create CoinGecko Prices service backed by the cache
	apiClient := coingecko_prices.NewCoinGeckoClient(cfg.Coingecko, metrics.NewMetricsWriter(metrics.ServicePrices))
	pricesService := coingecko_prices.NewService(cacheService, apiClient)
	registry.Register("prices", pricesService)

	keyStore := apikeys.NewStore(clk)
	limiter := ratelimit.New(cfg.RateLimits, cfg.RateLimitScope, clk)

	// Export state sizes periodically
	if cfg.StatsInterval > 0 {
		stats := &statsRecorder{cache: cacheService, keyStore: keyStore, limiter: limiter}
		registry.Register("stats", scheduler.New(cfg.StatsInterval, stats.record, scheduler.WithImmediateRun()))
	}

	// Create HTTP server and register it as a core
	server := api.New(cfg, pricesService, keyStore, limiter, clk)
	registry.Register("api", server)

	return registry, nil
}

package interfaces

import (
	"context"
	"encoding/json"

	"github.com/status-im/price-proxy/cache"
)

//go:generate mockgen -destination=mocks/prices.go . PricesService

// PricesService serves upstream price responses through the price cache
type PricesService interface {
	// Prices returns the raw provider response for exactly the given asset ids
	Prices(ctx context.Context, ids []string) (json.RawMessage, cache.CacheStatus, error)

	// Price returns the raw provider response for one asset id, failing with
	// coingecko_prices.ErrNotFound when the provider has no entry for it
	Price(ctx context.Context, id string) (json.RawMessage, cache.CacheStatus, error)

	// Healthy reports whether the upstream has been reached at least once
	Healthy() bool
}

package coingecko_prices

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/status-im/price-proxy/cache"
	"github.com/status-im/price-proxy/logger"
	"github.com/status-im/price-proxy/metrics"
)

// Service serves upstream prices through the price cache
type Service struct {
	cache     cache.Cache
	apiClient APIClient
	log       zerolog.Logger
}

// NewService creates a new price service with the given cache and upstream client
func NewService(cache cache.Cache, apiClient APIClient) *Service {
	return &Service{
		cache:     cache,
		apiClient: apiClient,
		log:       logger.Component("prices"),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	if s.apiClient == nil {
		return fmt.Errorf("api client dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
}

// Prices returns the provider response for exactly the given id set.
// Ids are normalized first; the cache is consulted for that key only.
func (s *Service) Prices(ctx context.Context, ids []string) (PriceData, cache.CacheStatus, error) {
	normalized := NormalizeIDs(ids)
	if len(normalized) == 0 {
		return nil, cache.StatusMiss, fmt.Errorf("%w: no asset ids requested", ErrNotFound)
	}
	queryKey := QueryKey(normalized)

	loader := func(string) ([]byte, error) {
		data, err := s.apiClient.FetchPrices(ctx, normalized)
		if err != nil {
			s.log.Error().Err(err).Str("query", queryKey).Msg("Error fetching prices")
			return nil, err
		}
		return data, nil
	}

	payload, status, err := s.cache.GetOrLoad(queryKey, loader)
	metrics.RecordCacheLookup(string(status))
	if err != nil {
		return nil, status, fmt.Errorf("failed to get prices for %s: %w", queryKey, err)
	}

	return PriceData(payload), status, nil
}

// Price returns the provider response for a single asset id, or ErrNotFound when
// the provider has no entry for it
func (s *Service) Price(ctx context.Context, id string) (PriceData, cache.CacheStatus, error) {
	data, status, err := s.Prices(ctx, []string{id})
	if err != nil {
		return nil, status, err
	}

	assets, err := decodeAssets(data)
	if err != nil {
		return nil, status, fmt.Errorf("failed to decode cached prices: %w", err)
	}
	if _, found := assets[QueryKey([]string{id})]; !found {
		return nil, status, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return data, status, nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	return s.apiClient != nil && s.apiClient.Healthy()
}

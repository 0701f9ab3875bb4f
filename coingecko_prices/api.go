package coingecko_prices

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	cg "github.com/status-im/price-proxy/coingecko_common"
	"github.com/status-im/price-proxy/config"
	"github.com/status-im/price-proxy/logger"
	"github.com/status-im/price-proxy/metrics"
)

// APIClient defines interface for upstream price operations
//
//go:generate mockgen -destination=mocks/api.go . APIClient
type APIClient interface {
	// FetchPrices fetches USD quotes for the given asset ids in one request
	// and returns the raw provider response
	FetchPrices(ctx context.Context, ids []string) (PriceData, error)
	// Healthy reports whether at least one fetch has succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          config.CoingeckoConfig
	apiKey          cg.APIKey
	httpClient      *cg.HTTPClient
	metricsWriter   *metrics.MetricsWriter
	log             zerolog.Logger
	successfulFetch atomic.Bool // Flag indicating if at least one fetch was successful
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg config.CoingeckoConfig, metricsWriter *metrics.MetricsWriter) *CoinGeckoClient {
	opts := cg.DefaultClientOptions()
	opts.LogPrefix = "CoinGeckoPrices"
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}
	opts.RequestsPerMinute = cfg.RateLimitPerMinute

	var handler cg.IHttpStatusHandler
	if metricsWriter != nil {
		handler = cg.NewHttpRequestMetricsWriter(metricsWriter.GetServiceName())
	}

	return &CoinGeckoClient{
		config:        cfg,
		apiKey:        cg.KeyFromConfig(cfg),
		httpClient:    cg.NewHTTPClient(opts, handler),
		metricsWriter: metricsWriter,
		log:           logger.Component("coingecko"),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchPrices fetches current price, 24h change, market cap and 24h volume in USD
func (c *CoinGeckoClient) FetchPrices(ctx context.Context, ids []string) (PriceData, error) {
	baseURL := cg.GetApiBaseUrl(c.config, c.apiKey.Type)

	request, err := NewPricesRequestBuilder(baseURL).
		WithIds(ids).
		WithQuoteFields().
		WithApiKey(c.apiKey).
		WithUserAgent(c.config.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, &cg.UpstreamError{Message: fmt.Sprintf("failed to build request: %v", err), Err: err}
	}

	c.log.Debug().Strs("ids", ids).Str("key_type", c.apiKey.Type.String()).Msg("CoinGecko: requesting prices")

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}
	if c.metricsWriter != nil {
		c.metricsWriter.RecordFetch(duration)
	}

	if !json.Valid(body) {
		return nil, &cg.UpstreamError{Message: "invalid JSON in provider response"}
	}
	if _, err := decodeAssets(body); err != nil {
		return nil, &cg.UpstreamError{Message: fmt.Sprintf("unexpected provider response: %v", err), Err: err}
	}

	c.log.Info().
		Int("ids", len(ids)).
		Dur("duration", duration).
		Msg("CoinGecko: fetched prices")

	c.successfulFetch.Store(true)

	return PriceData(body), nil
}

package coingecko_prices

import (
	"strings"

	cg "github.com/status-im/price-proxy/coingecko_common"
)

const (
	// Complete path for simple price API endpoint
	PRICES_API_PATH = "/api/v3/simple/price"

	// Quote currency of every served price
	QUOTE_CURRENCY = "usd"
)

// PricesRequestBuilder implements the Builder pattern for CoinGecko simple price API requests
type PricesRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewPricesRequestBuilder creates a new request builder for simple price endpoint
func NewPricesRequestBuilder(baseURL string) *PricesRequestBuilder {
	return &PricesRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, PRICES_API_PATH),
	}
}

// WithIds adds the comma separated coin IDs parameter
func (rb *PricesRequestBuilder) WithIds(ids []string) *PricesRequestBuilder {
	rb.With("ids", strings.Join(ids, ","))
	return rb
}

// WithCurrencies adds vs_currencies parameter
func (rb *PricesRequestBuilder) WithCurrencies(currencies []string) *PricesRequestBuilder {
	rb.With("vs_currencies", strings.Join(currencies, ","))
	return rb
}

// WithIncludeMarketCap adds include_market_cap parameter
func (rb *PricesRequestBuilder) WithIncludeMarketCap(include bool) *PricesRequestBuilder {
	if include {
		rb.With("include_market_cap", "true")
	}
	return rb
}

// WithInclude24hVolume adds include_24hr_vol parameter
func (rb *PricesRequestBuilder) WithInclude24hVolume(include bool) *PricesRequestBuilder {
	if include {
		rb.With("include_24hr_vol", "true")
	}
	return rb
}

// WithInclude24hChange adds include_24hr_change parameter
func (rb *PricesRequestBuilder) WithInclude24hChange(include bool) *PricesRequestBuilder {
	if include {
		rb.With("include_24hr_change", "true")
	}
	return rb
}

// WithQuoteFields requests the USD price, 24h change, market cap and 24h volume
func (rb *PricesRequestBuilder) WithQuoteFields() *PricesRequestBuilder {
	return rb.WithCurrencies([]string{QUOTE_CURRENCY}).
		WithInclude24hChange(true).
		WithIncludeMarketCap(true).
		WithInclude24hVolume(true)
}

package coingecko_prices

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when the provider has no entry for a requested asset id
var ErrNotFound = errors.New("asset not found")

// Quote is the per-asset shape returned by the provider for QUOTE_CURRENCY
type Quote struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USDMarketCap float64 `json:"usd_market_cap"`
	USD24hVol    float64 `json:"usd_24h_vol"`
}

// PriceData is the provider response body, asset id -> quote, passed through unmodified
type PriceData = json.RawMessage

// decodeAssets splits a provider response into its per-asset raw entries
func decodeAssets(data PriceData) (map[string]json.RawMessage, error) {
	var assets map[string]json.RawMessage
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

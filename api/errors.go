package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/coingecko_common"
	"github.com/status-im/price-proxy/coingecko_prices"
)

// RateLimitError is returned when a caller has used up its tier's budget
type RateLimitError struct {
	Tier       apikeys.Tier
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s tier", e.Tier)
}

// errorResponse is the body of every non-2xx response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorStatus maps a handler error to its HTTP status and response body
func errorStatus(err error) (int, errorResponse) {
	var rateLimitErr *RateLimitError
	var upstreamErr *coingecko_common.UpstreamError

	switch {
	case errors.Is(err, apikeys.ErrMissingKey):
		return http.StatusUnauthorized, errorResponse{
			Error:   "API key required",
			Message: "Provide an API key in the x-api-key header. Get one with POST /generate-key",
		}
	case errors.As(err, &rateLimitErr):
		return http.StatusTooManyRequests, errorResponse{
			Error:   "Rate limit exceeded",
			Message: upgradeAdvice(rateLimitErr.Tier),
		}
	case errors.Is(err, coingecko_prices.ErrNotFound):
		return http.StatusNotFound, errorResponse{
			Error:   "Cryptocurrency not found",
			Message: "Check the id, e.g. bitcoin, ethereum, solana",
		}
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, errorResponse{
			Error:   "Failed to fetch prices",
			Message: upstreamErr.Message,
		}
	default:
		return http.StatusInternalServerError, errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		}
	}
}

func upgradeAdvice(tier apikeys.Tier) string {
	switch tier {
	case apikeys.TierFree:
		return "Free tier limit reached. Upgrade to pro or enterprise for higher limits"
	case apikeys.TierPro:
		return "Pro tier limit reached. Upgrade to enterprise for higher limits"
	default:
		return "Request budget exhausted, retry after the window resets"
	}
}

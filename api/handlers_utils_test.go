package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/coingecko_common"
	"github.com/status-im/price-proxy/coingecko_prices"
	"github.com/status-im/price-proxy/logger"
)

func TestGetParamLowercase(t *testing.T) {
	t.Run("lowercases the value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/prices?ids=Bitcoin,ETHEREUM", nil)
		assert.Equal(t, "bitcoin,ethereum", getParamLowercase(req, "ids"))
	})

	t.Run("missing parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/prices", nil)
		assert.Equal(t, "", getParamLowercase(req, "ids"))
	})

	t.Run("nil request", func(t *testing.T) {
		assert.Equal(t, "", getParamLowercase(nil, "ids"))
	})
}

func TestSplitParamLowercase(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected []string
	}{
		{"mixed case values", "Bitcoin,ETHEREUM", []string{"bitcoin", "ethereum"}},
		{"keeps request order", "solana,bitcoin", []string{"solana", "bitcoin"}},
		{"trims spaces", " bitcoin , ethereum ", []string{"bitcoin", "ethereum"}},
		{"drops empty parts", ",bitcoin,,ethereum,", []string{"bitcoin", "ethereum"}},
		{"empty string", "", []string{}},
		{"only separators", " , , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitParamLowercase(tt.param))
		})
	}
}

func TestSendJSONResponse(t *testing.T) {
	server := &Server{log: logger.Component("api")}
	recorder := httptest.NewRecorder()

	server.sendJSONResponse(recorder, map[string]interface{}{"count": 3, "items": []string{"x", "y"}})

	body := recorder.Body.String()
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"count":3,"items":["x","y"]}`, body)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprint(len(body)), recorder.Header().Get("Content-Length"))

	etag := recorder.Header().Get("ETag")
	assert.True(t, strings.HasPrefix(etag, `"`) && strings.HasSuffix(etag, `"`), "ETag should be quoted")

	// same body, same ETag
	again := httptest.NewRecorder()
	server.sendJSONResponse(again, map[string]interface{}{"count": 3, "items": []string{"x", "y"}})
	assert.Equal(t, etag, again.Header().Get("ETag"))
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedMsg    string
	}{
		{
			name:           "missing key",
			err:            apikeys.ErrMissingKey,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "API key required",
		},
		{
			name:           "rate limited",
			err:            &RateLimitError{Tier: apikeys.TierFree},
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  "Rate limit exceeded",
			expectedMsg:    upgradeAdvice(apikeys.TierFree),
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("lookup: %w", coingecko_prices.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedError:  "Cryptocurrency not found",
		},
		{
			name:           "upstream message is passed through",
			err:            fmt.Errorf("failed to get prices: %w", &coingecko_common.UpstreamError{StatusCode: 502, Message: "bad gateway"}),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch prices",
			expectedMsg:    "bad gateway",
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
			expectedMsg:    "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &Server{log: logger.Component("api")}
			recorder := httptest.NewRecorder()

			server.sendError(recorder, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body.Error)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, body.Message)
			} else {
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

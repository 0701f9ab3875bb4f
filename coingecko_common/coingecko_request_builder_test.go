package coingecko_common

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://example.com/api/v3/ping", buildURL("https://example.com/", "/api/v3/ping"))
	assert.Equal(t, "https://example.com/api/v3/ping", buildURL("https://example.com", "api/v3/ping"))
}

func TestCoingeckoRequestBuilder_BuildURL(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     APIKey
		wantParams map[string]string
		absent     []string
	}{
		{
			name:       "no key",
			apiKey:     APIKey{Type: NoKey},
			wantParams: map[string]string{"ids": "bitcoin"},
			absent:     []string{"x_cg_pro_api_key", "x_cg_demo_api_key"},
		},
		{
			name:       "pro key",
			apiKey:     APIKey{Key: "pro-123", Type: ProKey},
			wantParams: map[string]string{"ids": "bitcoin", "x_cg_pro_api_key": "pro-123"},
			absent:     []string{"x_cg_demo_api_key"},
		},
		{
			name:       "demo key",
			apiKey:     APIKey{Key: "demo-123", Type: DemoKey},
			wantParams: map[string]string{"ids": "bitcoin", "x_cg_demo_api_key": "demo-123"},
			absent:     []string{"x_cg_pro_api_key"},
		},
		{
			name:   "typed key without value is ignored",
			apiKey: APIKey{Type: ProKey},
			absent: []string{"x_cg_pro_api_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewCoingeckoRequestBuilder("https://api.example.com", "/api/v3/simple/price").
				With("ids", "bitcoin").
				WithApiKey(tt.apiKey)

			u, err := url.Parse(rb.BuildURL())
			require.NoError(t, err)
			assert.Equal(t, "/api/v3/simple/price", u.Path)

			for k, v := range tt.wantParams {
				assert.Equal(t, v, u.Query().Get(k))
			}
			for _, k := range tt.absent {
				assert.False(t, u.Query().Has(k), "unexpected param %s", k)
			}
		})
	}
}

func TestCoingeckoRequestBuilder_Build(t *testing.T) {
	ctx := context.Background()
	req, err := NewCoingeckoRequestBuilder("https://api.example.com", "/api/v3/ping").
		WithUserAgent("test-agent").
		Build(ctx)

	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
	assert.Equal(t, ctx, req.Context())

	req, err = NewCoingeckoRequestBuilder("https://api.example.com", "/api/v3/ping").
		WithUserAgent("").
		Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mozilla/5.0 Price-Proxy", req.Header.Get("User-Agent"))
}

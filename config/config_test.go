package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "full config",
			configYAML: `
server:
  port: 8081
  trust_proxy: true
cache:
  ttl: 30s
coingecko:
  api_key: "cg-key"
  key_type: pro
  request_timeout: 5s
  default_ids: [bitcoin, solana]
rate_limits:
  free:
    window: 1m
    max: 5
  pro:
    window: 1h
    max: 50
  enterprise:
    window: 1h
    max: 500
rate_limit_scope: tier
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8081, cfg.Server.Port)
				assert.True(t, cfg.Server.TrustProxy)
				assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
				assert.Equal(t, "cg-key", cfg.Coingecko.APIKey)
				assert.Equal(t, KeyTypePro, cfg.Coingecko.KeyType)
				assert.Equal(t, 5*time.Second, cfg.Coingecko.RequestTimeout)
				assert.Equal(t, []string{"bitcoin", "solana"}, cfg.Coingecko.DefaultIDs)
				assert.Equal(t, TierLimit{Window: time.Minute, Max: 5}, cfg.RateLimits.Free)
				assert.Equal(t, ScopeTier, cfg.RateLimitScope)
			},
		},
		{
			name: "partial config keeps defaults",
			configYAML: `
server:
  port: 9000
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
				assert.Equal(t, 10*time.Second, cfg.Coingecko.RequestTimeout)
				assert.Equal(t, DefaultRateLimits(), cfg.RateLimits)
				assert.Equal(t, ScopeClient, cfg.RateLimitScope)
			},
		},
		{
			name: "invalid yaml",
			configYAML: `
cache:
  ttl: [not a duration
`,
			wantErr: true,
		},
		{
			name: "invalid scope",
			configYAML: `
rate_limit_scope: planet
`,
			wantErr: true,
		},
		{
			name: "invalid key type",
			configYAML: `
coingecko:
  key_type: gold
`,
			wantErr: true,
		},
		{
			name: "zero tier max",
			configYAML: `
rate_limits:
  pro:
    window: 1h
    max: 0
`,
			wantErr: true,
		},
		{
			name: "prices limit tier",
			configYAML: `
prices_limit_tier: free
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "free", cfg.PricesLimitTier)
			},
		},
		{
			name: "unknown prices limit tier",
			configYAML: `
prices_limit_tier: gold
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeTestConfig(t, tt.configYAML))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.Coingecko.DefaultIDs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COINGECKO_API_KEY", "env-key")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "env-key", cfg.Coingecko.APIKey)
}

func TestLoadConfig_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestRateLimitsConfig_ForTier(t *testing.T) {
	limits := DefaultRateLimits()

	assert.Equal(t, 100, limits.ForTier("free").Max)
	assert.Equal(t, 10000, limits.ForTier("pro").Max)
	assert.Equal(t, 100000, limits.ForTier("enterprise").Max)
	assert.Equal(t, 100, limits.ForTier("unknown").Max)
	assert.Equal(t, time.Hour, limits.ForTier("pro").Window)
}

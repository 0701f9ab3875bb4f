package config

import (
	"fmt"
	"time"
)

// Upstream key types
const (
	KeyTypePro  = "pro"
	KeyTypeDemo = "demo"
)

// CoingeckoConfig configures the upstream price provider
type CoingeckoConfig struct {
	// Optional credential for the upstream provider
	APIKey  string `yaml:"api_key"`
	KeyType string `yaml:"key_type"` // "pro" or "demo"

	OverridePublicURL string `yaml:"override_public_url"`
	OverrideProURL    string `yaml:"override_pro_url"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	// UserAgent is sent on every upstream request
	UserAgent string `yaml:"user_agent"`

	// RateLimitPerMinute throttles outbound calls to the provider; 0 disables throttling
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// DefaultIDs are served by GET /prices
	DefaultIDs []string `yaml:"default_ids"`
}

// DefaultCoingeckoConfig returns upstream defaults
func DefaultCoingeckoConfig() CoingeckoConfig {
	return CoingeckoConfig{
		KeyType:        KeyTypeDemo,
		RequestTimeout: 10 * time.Second,
		UserAgent:      "price-proxy/1.0",
		DefaultIDs:     []string{"bitcoin", "ethereum"},
	}
}

// Validate checks upstream settings
func (c CoingeckoConfig) Validate() error {
	if c.KeyType != "" && c.KeyType != KeyTypePro && c.KeyType != KeyTypeDemo {
		return fmt.Errorf("key_type must be %q or %q, got %q", KeyTypePro, KeyTypeDemo, c.KeyType)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute cannot be negative")
	}
	if len(c.DefaultIDs) == 0 {
		return fmt.Errorf("default_ids cannot be empty")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/status-im/price-proxy/cache"
	"github.com/status-im/price-proxy/logger"
)

const DefaultPort = 3000

type Config struct {
	Server         ServerConfig     `yaml:"server"`
	Service        ServiceInfo      `yaml:"service"`
	Cache          cache.Config     `yaml:"cache"`
	Coingecko      CoingeckoConfig  `yaml:"coingecko"`
	RateLimits     RateLimitsConfig `yaml:"rate_limits"`
	RateLimitScope string           `yaml:"rate_limit_scope"`

	// PricesLimitTier, when set to a tier name, makes GET /prices count against that
	// tier's limit whatever the caller's tier. Empty uses the caller's tier.
	PricesLimitTier string `yaml:"prices_limit_tier"`

	Logging logger.Config `yaml:"logging"`

	// StatsInterval controls how often cache and key store sizes are exported to metrics
	StatsInterval time.Duration `yaml:"stats_interval"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port            int           `yaml:"port"`
	TrustProxy      bool          `yaml:"trust_proxy"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ServiceInfo is the metadata served on GET /
type ServiceInfo struct {
	Name           string `yaml:"name"`
	Version        string `yaml:"version"`
	Description    string `yaml:"description"`
	PaymentAddress string `yaml:"payment_address"`
}

// Rate limit scopes
const (
	ScopeClient = "client"
	ScopeTier   = "tier"
)

// Default returns a configuration usable without any config file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 5 * time.Second,
		},
		Service: ServiceInfo{
			Name:           "Crypto Price API",
			Version:        "1.0.0",
			Description:    "Real-time cryptocurrency prices with caching, API keys and tiered rate limits",
			PaymentAddress: "0x0000000000000000000000000000000000000000",
		},
		Cache:          cache.DefaultCacheConfig(),
		Coingecko:      DefaultCoingeckoConfig(),
		RateLimits:     DefaultRateLimits(),
		RateLimitScope: ScopeClient,
		Logging:        logger.Config{Level: "info"},
		StatsInterval:  30 * time.Second,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies
// environment overrides (a .env file in the working directory is honoured).
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn().Str("path", path).Msg("Config: file not found, using defaults")
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if key := os.Getenv("COINGECKO_API_KEY"); key != "" {
		c.Coingecko.APIKey = key
	}
	if keyType := os.Getenv("COINGECKO_KEY_TYPE"); keyType != "" {
		c.Coingecko.KeyType = keyType
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.RateLimitScope != ScopeClient && c.RateLimitScope != ScopeTier {
		return fmt.Errorf("rate_limit_scope must be %q or %q, got %q", ScopeClient, ScopeTier, c.RateLimitScope)
	}
	switch c.PricesLimitTier {
	case "", "free", "pro", "enterprise":
	default:
		return fmt.Errorf("prices_limit_tier must be empty or one of free, pro, enterprise, got %q", c.PricesLimitTier)
	}
	if err := c.Coingecko.Validate(); err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}
	if err := c.RateLimits.Validate(); err != nil {
		return fmt.Errorf("rate_limits: %w", err)
	}
	return nil
}

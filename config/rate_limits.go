package config

import (
	"fmt"
	"time"
)

// TierLimit is the request budget of one tier within a window
type TierLimit struct {
	Window time.Duration `yaml:"window"`
	Max    int           `yaml:"max"`
}

// RateLimitsConfig holds the per-tier request budgets
type RateLimitsConfig struct {
	Free       TierLimit `yaml:"free"`
	Pro        TierLimit `yaml:"pro"`
	Enterprise TierLimit `yaml:"enterprise"`
}

// DefaultRateLimits returns the published pricing limits
func DefaultRateLimits() RateLimitsConfig {
	return RateLimitsConfig{
		Free:       TierLimit{Window: time.Hour, Max: 100},
		Pro:        TierLimit{Window: time.Hour, Max: 10000},
		Enterprise: TierLimit{Window: time.Hour, Max: 100000},
	}
}

// ForTier returns the limit for a tier name; unknown names get the free limit
func (c RateLimitsConfig) ForTier(tier string) TierLimit {
	switch tier {
	case "enterprise":
		return c.Enterprise
	case "pro":
		return c.Pro
	default:
		return c.Free
	}
}

// Validate checks that every tier has a usable limit
func (c RateLimitsConfig) Validate() error {
	for name, l := range map[string]TierLimit{"free": c.Free, "pro": c.Pro, "enterprise": c.Enterprise} {
		if l.Window <= 0 {
			return fmt.Errorf("%s.window must be positive", name)
		}
		if l.Max <= 0 {
			return fmt.Errorf("%s.max must be positive", name)
		}
	}
	return nil
}

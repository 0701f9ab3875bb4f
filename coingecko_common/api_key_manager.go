package coingecko_common

import (
	"github.com/status-im/price-proxy/config"
)

// KeyType defines the upstream API key type
type KeyType int

const (
	// NoKey means no API key is available
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

func (k KeyType) String() string {
	switch k {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	default:
		return "none"
	}
}

// APIKey represents an upstream API key with its type
type APIKey struct {
	Key  string
	Type KeyType
}

// KeyFromConfig returns the configured upstream credential, or NoKey when none is set
func KeyFromConfig(cfg config.CoingeckoConfig) APIKey {
	if cfg.APIKey == "" {
		return APIKey{Type: NoKey}
	}
	if cfg.KeyType == config.KeyTypePro {
		return APIKey{Key: cfg.APIKey, Type: ProKey}
	}
	return APIKey{Key: cfg.APIKey, Type: DemoKey}
}

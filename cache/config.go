package cache

import "time"

// DefaultTTL is the freshness window of a cached price payload
const DefaultTTL = 60 * time.Second

// Config represents cache configuration
type Config struct {
	// TTL freshness window; entries older than this are refetched on read
	TTL time.Duration `yaml:"ttl"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		TTL: DefaultTTL,
	}
}

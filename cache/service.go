package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/status-im/price-proxy/clock"
)

// Service implements Cache on top of go-cache with an injectable clock
type Service struct {
	goCache *GoCache
	config  Config
	clock   clock.Clock
}

// NewService creates a new cache service with the given configuration
func NewService(config Config, clk clock.Clock) *Service {
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if clk == nil {
		clk = clock.Real{}
	}

	return &Service{
		goCache: NewGoCache(),
		config:  config,
		clock:   clk,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// TTL returns the configured freshness window
func (s *Service) TTL() time.Duration {
	return s.config.TTL
}

// Get returns the stored entry for queryKey, fresh or not
func (s *Service) Get(queryKey string) (Entry, bool) {
	return s.goCache.Get(queryKey)
}

// Put stores payload for queryKey stamped with the clock's current time
func (s *Service) Put(queryKey string, payload []byte) {
	s.goCache.Set(Entry{
		QueryKey:  queryKey,
		Payload:   payload,
		FetchedAt: s.clock.Now(),
	})
}

// IsFresh reports whether now - entry.FetchedAt < TTL
func (s *Service) IsFresh(entry Entry, now time.Time) bool {
	return now.Sub(entry.FetchedAt) < s.config.TTL
}

// GetOrLoad returns the cached payload for queryKey while it is fresh,
// otherwise calls loader and stores its result. A failed load leaves the
// previous entry untouched.
func (s *Service) GetOrLoad(queryKey string, loader LoaderFunc) ([]byte, CacheStatus, error) {
	if entry, found := s.goCache.Get(queryKey); found && s.IsFresh(entry, s.clock.Now()) {
		return entry.Payload, StatusHit, nil
	}

	payload, err := loader(queryKey)
	if err != nil {
		return nil, StatusMiss, err
	}

	s.Put(queryKey, payload)
	return payload, StatusMiss, nil
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		Items: s.goCache.ItemCount(),
		TTL:   s.config.TTL,
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	Items int           // Number of stored entries, fresh or stale
	TTL   time.Duration // Freshness window
}

// Clear removes all items from cache
func (s *Service) Clear() {
	s.goCache.Clear()
}

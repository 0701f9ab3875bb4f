package cache

import "time"

// LoaderFunc loads the payload for a query key that is absent or stale in the cache
type LoaderFunc func(queryKey string) ([]byte, error)

// CacheStatus reports how a lookup was served
type CacheStatus string

const (
	StatusHit  CacheStatus = "hit"
	StatusMiss CacheStatus = "miss"
)

// Entry is a cached upstream payload for one normalized query key.
// Entries are replaced whole; a stored entry is never mutated.
type Entry struct {
	QueryKey  string
	Payload   []byte
	FetchedAt time.Time
}

// Cache is a time-bounded store of upstream payloads keyed by query key
type Cache interface {
	// Get returns the entry stored for queryKey regardless of freshness
	Get(queryKey string) (Entry, bool)

	// Put stores payload under queryKey stamped with the current time,
	// replacing any previous entry
	Put(queryKey string, payload []byte)

	// IsFresh reports whether entry is still within the TTL at now
	IsFresh(entry Entry, now time.Time) bool

	// GetOrLoad serves a fresh entry or calls loader and stores its result
	GetOrLoad(queryKey string, loader LoaderFunc) ([]byte, CacheStatus, error)
}

package cache

import (
	"github.com/patrickmn/go-cache"
)

// GoCache in-memory entry store backed by go-cache.
// Items never expire inside go-cache; freshness is decided by the caller from Entry.FetchedAt.
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance without expiration or janitor
func NewGoCache() *GoCache {
	return &GoCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get retrieves the entry stored under key
func (gc *GoCache) Get(key string) (Entry, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return Entry{}, false
	}
	entry, ok := value.(Entry)
	if !ok {
		return Entry{}, false
	}
	return entry, true
}

// Set stores entry under its query key, replacing the previous one
func (gc *GoCache) Set(entry Entry) {
	gc.cache.Set(entry.QueryKey, entry, cache.NoExpiration)
}

// Delete removes an entry
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}

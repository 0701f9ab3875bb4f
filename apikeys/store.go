package apikeys

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/status-im/price-proxy/clock"
)

const (
	tokenAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenPartLength = 11
)

// Record is an issued API key
type Record struct {
	Key       string    `json:"apiKey"`
	Tier      Tier      `json:"tier"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store issues test API keys and remembers them for the lifetime of the process.
// Keys use non-cryptographic randomness and are not meant to protect anything.
type Store struct {
	mu    sync.RWMutex
	rand  *rand.Rand
	keys  map[string]Record
	clock clock.Clock
}

// NewStore creates an empty key store
func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Store{
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:  make(map[string]Record),
		clock: clk,
	}
}

// Issue generates a new key for requestedTier (unknown names become free) and records it
func (s *Store) Issue(requestedTier string) Record {
	tier := ParseTier(requestedTier)

	s.mu.Lock()
	defer s.mu.Unlock()

	var key string
	for {
		key = tier.Prefix() + s.randomPartLocked() + s.randomPartLocked()
		if _, exists := s.keys[key]; !exists {
			break
		}
	}

	record := Record{
		Key:       key,
		Tier:      tier,
		CreatedAt: s.clock.Now(),
	}
	s.keys[key] = record
	return record
}

// Lookup returns the record of a key issued by this store
func (s *Store) Lookup(key string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.keys[key]
	return record, ok
}

// Count returns the number of issued keys
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// CountByTier returns the number of issued keys per tier
func (s *Store) CountByTier() map[Tier]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[Tier]int, len(Tiers))
	for _, tier := range Tiers {
		counts[tier] = 0
	}
	for _, record := range s.keys {
		counts[record.Tier]++
	}
	return counts
}

func (s *Store) randomPartLocked() string {
	var sb strings.Builder
	sb.Grow(tokenPartLength)
	for i := 0; i < tokenPartLength; i++ {
		sb.WriteByte(tokenAlphabet[s.rand.Intn(len(tokenAlphabet))])
	}
	return sb.String()
}

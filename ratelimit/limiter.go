package ratelimit

import (
	"sync"
	"time"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/clock"
	"github.com/status-im/price-proxy/config"
)

// sharedIdentity is the bucket key used when every caller of a tier shares one budget
const sharedIdentity = "*"

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration // time until the current window ends
}

// window counts requests in one fixed window starting at start
type window struct {
	mu    sync.Mutex
	start time.Time
	count int
}

// take counts one request at now if the window still has budget
func (w *window) take(now time.Time, limit config.TierLimit) Decision {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.start.IsZero() || now.Sub(w.start) >= limit.Window {
		w.start = now
		w.count = 0
	}

	allowed := w.count < limit.Max
	if allowed {
		w.count++
	}

	return Decision{
		Allowed:    allowed,
		Limit:      limit.Max,
		Remaining:  limit.Max - w.count,
		ResetAfter: w.start.Add(limit.Window).Sub(now),
	}
}

func (w *window) expired(now time.Time, limit config.TierLimit) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.start) >= limit.Window
}

// Limiter enforces per-tier request budgets. Each tier allows Max requests per
// fixed Window, counted from the first request of the window; windows are kept
// per caller identity unless the scope is config.ScopeTier, in which case all
// callers of a tier share one.
type Limiter struct {
	mu          sync.RWMutex
	keyToWindow map[string]*window
	keyToTier   map[string]apikeys.Tier
	limits      config.RateLimitsConfig
	scope       string
	clock       clock.Clock
}

// New creates a limiter for the given per-tier limits
func New(limits config.RateLimitsConfig, scope string, clk clock.Clock) *Limiter {
	if clk == nil {
		clk = clock.Real{}
	}
	if scope == "" {
		scope = config.ScopeClient
	}
	return &Limiter{
		keyToWindow: make(map[string]*window),
		keyToTier:   make(map[string]apikeys.Tier),
		limits:      limits,
		scope:       scope,
		clock:       clk,
	}
}

// Allow counts one request against the window of identity within tier
func (l *Limiter) Allow(identity string, tier apikeys.Tier) Decision {
	now := l.clock.Now()
	limit := l.limits.ForTier(tier.String())
	return l.getWindow(identity, tier).take(now, limit)
}

// Limit returns the configured budget for tier
func (l *Limiter) Limit(tier apikeys.Tier) config.TierLimit {
	return l.limits.ForTier(tier.String())
}

// Size returns the number of tracked windows
func (l *Limiter) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.keyToWindow)
}

// Prune drops windows that have ended; they are indistinguishable from new ones
func (l *Limiter) Prune() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.keyToWindow {
		if w.expired(now, l.limits.ForTier(l.keyToTier[key].String())) {
			delete(l.keyToWindow, key)
			delete(l.keyToTier, key)
			removed++
		}
	}
	return removed
}

// getWindow returns the window for identity within tier, creating it if missing
func (l *Limiter) getWindow(identity string, tier apikeys.Tier) *window {
	mapKey := l.limiterMapKey(identity, tier)

	l.mu.RLock()
	if w, ok := l.keyToWindow[mapKey]; ok {
		l.mu.RUnlock()
		return w
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	if w, ok := l.keyToWindow[mapKey]; ok {
		return w
	}

	w := &window{}
	l.keyToWindow[mapKey] = w
	l.keyToTier[mapKey] = tier
	return w
}

func (l *Limiter) limiterMapKey(identity string, tier apikeys.Tier) string {
	if l.scope == config.ScopeTier || identity == "" {
		identity = sharedIdentity
	}
	return "tier:" + tier.String() + "|id:" + identity
}

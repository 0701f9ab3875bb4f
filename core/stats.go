package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/cache"
	"github.com/status-im/price-proxy/metrics"
	"github.com/status-im/price-proxy/ratelimit"
)

// statsRecorder exports the size of the in-memory state to metrics and
// drops rate limit windows that have ended
type statsRecorder struct {
	cache    *cache.Service
	keyStore *apikeys.Store
	limiter  *ratelimit.Limiter
}

func (r *statsRecorder) record(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	stats := r.cache.Stats()
	metrics.RecordCacheSize(stats.Items)

	byTier := r.keyStore.CountByTier()
	counts := make(map[string]int, len(byTier))
	for tier, n := range byTier {
		counts[tier.String()] = n
	}
	metrics.RecordAPIKeys(counts)

	pruned := r.limiter.Prune()
	metrics.RecordRateLimitBuckets(r.limiter.Size())

	log.Debug().
		Int("cache_items", stats.Items).
		Int("api_keys", r.keyStore.Count()).
		Int("buckets_pruned", pruned).
		Msg("Stats: recorded")
}

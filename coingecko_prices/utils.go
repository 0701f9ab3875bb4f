package coingecko_prices

import (
	"strings"
)

// NormalizeIDs lowercases and trims asset ids, dropping empty ones. Order is kept.
func NormalizeIDs(ids []string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed := strings.ToLower(strings.TrimSpace(id))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// QueryKey joins normalized ids into the cache key for that exact id set
func QueryKey(ids []string) string {
	return strings.Join(NormalizeIDs(ids), ",")
}

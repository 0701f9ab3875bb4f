package apikeys

import (
	"errors"
	"strings"
)

// Tier is the service level a caller is entitled to
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Key prefixes. The tier of a key is read from its prefix alone.
const (
	PrefixFree       = "free_"
	PrefixPro        = "pro_"
	PrefixEnterprise = "ent_"
)

// ErrMissingKey is returned when a request carries no API key
var ErrMissingKey = errors.New("API key required")

// Tiers lists all tiers from lowest to highest
var Tiers = []Tier{TierFree, TierPro, TierEnterprise}

// Classify derives the tier of apiKey from its literal prefix.
// There is no registry check: any string with a known prefix gets that tier.
func Classify(apiKey string) (Tier, error) {
	if apiKey == "" {
		return "", ErrMissingKey
	}

	switch {
	case strings.HasPrefix(apiKey, PrefixEnterprise):
		return TierEnterprise, nil
	case strings.HasPrefix(apiKey, PrefixPro):
		return TierPro, nil
	default:
		return TierFree, nil
	}
}

// ParseTier maps a requested tier name to a Tier, defaulting to free
func ParseTier(name string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(name))) {
	case TierPro:
		return TierPro
	case TierEnterprise:
		return TierEnterprise
	default:
		return TierFree
	}
}

// Prefix returns the key prefix issued for t
func (t Tier) Prefix() string {
	switch t {
	case TierEnterprise:
		return PrefixEnterprise
	case TierPro:
		return PrefixPro
	default:
		return PrefixFree
	}
}

func (t Tier) String() string {
	return string(t)
}

package coingecko_prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"lowercases", []string{"Bitcoin", "ETHEREUM"}, []string{"bitcoin", "ethereum"}},
		{"trims and drops empty", []string{" bitcoin ", "", "  "}, []string{"bitcoin"}},
		{"keeps order", []string{"ethereum", "bitcoin"}, []string{"ethereum", "bitcoin"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIDs(tt.input))
		})
	}
}

func TestQueryKey(t *testing.T) {
	assert.Equal(t, "bitcoin,ethereum", QueryKey([]string{"Bitcoin", "Ethereum"}))
	assert.Equal(t, "bitcoin", QueryKey([]string{"BITCOIN"}))
	assert.NotEqual(t, QueryKey([]string{"bitcoin", "ethereum"}), QueryKey([]string{"bitcoin"}))
}

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/metrics"
)

// maxKeyRequestBody bounds the POST /generate-key body
const maxKeyRequestBody = 1 << 10

type generateKeyRequest struct {
	Tier string `json:"tier"`
}

type generateKeyResponse struct {
	APIKey  string       `json:"apiKey"`
	Tier    apikeys.Tier `json:"tier"`
	Message string       `json:"message"`
}

// handleGenerateKey issues a new key. An absent, unknown or unreadable tier yields a free key.
func (s *Server) handleGenerateKey(w http.ResponseWriter, r *http.Request) {
	var req generateKeyRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxKeyRequestBody))
	if err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.log.Debug().Err(err).Msg("Ignoring malformed generate-key body")
			req = generateKeyRequest{}
		}
	}

	record := s.keyStore.Issue(req.Tier)
	metrics.RecordKeyIssued(record.Tier.String())

	limit := s.cfg.RateLimits.ForTier(record.Tier.String())
	s.sendJSONResponse(w, generateKeyResponse{
		APIKey: record.Key,
		Tier:   record.Tier,
		Message: fmt.Sprintf("Send this key in the x-api-key header. The %s tier allows %d requests per %s",
			record.Tier, limit.Max, limit.Window),
	})
}

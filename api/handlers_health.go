package api

import (
	"net/http"
	"time"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := s.clock.Now()

	upstream := "unknown"
	if s.pricesService != nil && s.pricesService.Healthy() {
		upstream = "up"
	}

	status := map[string]interface{}{
		"status":    "ok",
		"timestamp": now.UTC().Format(time.RFC3339),
		"uptime":    now.Sub(s.startedAt).Seconds(),
		"services": map[string]string{
			"coingecko_prices": upstream,
		},
	}

	s.sendJSONResponse(w, status)
}

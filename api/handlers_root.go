package api

import (
	"fmt"
	"net/http"

	"github.com/status-im/price-proxy/apikeys"
)

type tierInfo struct {
	Requests int    `json:"requests"`
	Window   string `json:"window"`
}

type rootResponse struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Endpoints   map[string]string   `json:"endpoints"`
	Pricing     map[string]tierInfo `json:"pricing"`
	Payment     string              `json:"payment"`
}

// handleRoot describes the service, its endpoints and the request budget of each tier
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	pricing := make(map[string]tierInfo, len(apikeys.Tiers))
	for _, tier := range apikeys.Tiers {
		limit := s.cfg.RateLimits.ForTier(tier.String())
		pricing[tier.String()] = tierInfo{
			Requests: limit.Max,
			Window:   limit.Window.String(),
		}
	}

	info := s.cfg.Service
	s.sendJSONResponse(w, rootResponse{
		Name:        info.Name,
		Version:     info.Version,
		Description: info.Description,
		Endpoints: map[string]string{
			"GET /":              "Service information",
			"GET /health":        "Health check",
			"GET /prices":        "Prices for the default assets or ?ids=a,b (x-api-key header required)",
			"GET /prices/{id}":   "Price for a single asset (x-api-key header required)",
			"POST /generate-key": "Issue an API key, body {\"tier\": \"free|pro|enterprise\"}",
			"GET /metrics":       "Prometheus metrics",
		},
		Pricing: pricing,
		Payment: fmt.Sprintf("Send payment to %s to upgrade your tier", info.PaymentAddress),
	})
}

// handleNotFound answers unknown routes with the JSON error shape
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponseWithStatus(w, http.StatusNotFound, errorResponse{
		Error:   "Not found",
		Message: fmt.Sprintf("No route for %s %s, see GET / for the endpoint list", r.Method, r.URL.Path),
	})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponseWithStatus(w, http.StatusMethodNotAllowed, errorResponse{
		Error:   "Method not allowed",
		Message: fmt.Sprintf("%s is not supported on %s, see GET / for the endpoint list", r.Method, r.URL.Path),
	})
}

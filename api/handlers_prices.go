package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/status-im/price-proxy/apikeys"
)

type pricesResponse struct {
	Success   bool            `json:"success"`
	Tier      apikeys.Tier    `json:"tier"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// handlePrices serves the default asset set, or the assets listed in ?ids=
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	ids := splitParamLowercase(getParamLowercase(r, "ids"))
	if len(ids) == 0 {
		ids = s.cfg.Coingecko.DefaultIDs
	}

	data, cacheStatus, err := s.pricesService.Prices(r.Context(), ids)
	s.setCacheStatusHeader(w, cacheStatus)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.sendPrices(w, r, data)
}

// handlePriceByID serves a single asset, 404 when the provider does not know it
func (s *Server) handlePriceByID(w http.ResponseWriter, r *http.Request) {
	id := strings.ToLower(strings.TrimSpace(mux.Vars(r)["id"]))

	data, cacheStatus, err := s.pricesService.Price(r.Context(), id)
	s.setCacheStatusHeader(w, cacheStatus)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.sendPrices(w, r, data)
}

func (s *Server) sendPrices(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	s.sendJSONResponse(w, pricesResponse{
		Success:   true,
		Tier:      tierFromContext(r.Context()),
		Data:      data,
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
	})
}

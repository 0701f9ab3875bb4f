package e2etest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// MockServer stands in for the CoinGecko simple/price API
type MockServer struct {
	server *httptest.Server

	mu       sync.RWMutex
	quotes   map[string]map[string]float64
	failWith int // non-zero status makes every request fail

	requests atomic.Int32
	lastIDs  atomic.Value
}

// NewMockServer creates and returns a new mock server with bitcoin, ethereum and solana quotes
func NewMockServer() *MockServer {
	ms := &MockServer{
		quotes: map[string]map[string]float64{
			"bitcoin":  quote(65000, 1.5, 1.28e12, 3.1e10),
			"ethereum": quote(3200, -0.7, 3.85e11, 1.4e10),
			"solana":   quote(150, 4.2, 6.9e10, 2.5e9),
		},
	}
	ms.lastIDs.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/simple/price", ms.handleSimplePrice)
	ms.server = httptest.NewServer(mux)

	return ms
}

func quote(price, change, marketCap, volume float64) map[string]float64 {
	return map[string]float64{
		"usd":            price,
		"usd_24h_change": change,
		"usd_market_cap": marketCap,
		"usd_24h_vol":    volume,
	}
}

func (ms *MockServer) handleSimplePrice(w http.ResponseWriter, r *http.Request) {
	ms.requests.Add(1)

	query := r.URL.Query()
	ids := query.Get("ids")
	ms.lastIDs.Store(ids)

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.failWith != 0 {
		http.Error(w, fmt.Sprintf("mock failure %d", ms.failWith), ms.failWith)
		return
	}
	if query.Get("vs_currencies") != "usd" {
		http.Error(w, "vs_currencies must be usd", http.StatusBadRequest)
		return
	}

	response := make(map[string]map[string]float64)
	for _, id := range strings.Split(ids, ",") {
		if q, ok := ms.quotes[id]; ok {
			response[id] = q
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// SetPrice changes the usd price of id
func (ms *MockServer) SetPrice(id string, price float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if q, ok := ms.quotes[id]; ok {
		q["usd"] = price
	}
}

// FailWith makes subsequent requests fail with status; 0 restores normal behaviour
func (ms *MockServer) FailWith(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.failWith = status
}

// Requests returns the number of simple/price requests received
func (ms *MockServer) Requests() int {
	return int(ms.requests.Load())
}

// LastIDs returns the ids parameter of the most recent request
func (ms *MockServer) LastIDs() string {
	return ms.lastIDs.Load().(string)
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close closes the mock server
func (ms *MockServer) Close() {
	ms.server.Close()
}

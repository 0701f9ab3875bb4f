package api

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/metrics"
)

const (
	headerAPIKey             = "x-api-key"
	headerRequestID          = "X-Request-ID"
	headerForwardedFor       = "X-Forwarded-For"
	headerRateLimitLimit     = "RateLimit-Limit"
	headerRateLimitRemaining = "RateLimit-Remaining"
	headerRateLimitReset     = "RateLimit-Reset"
)

// unmatchedEndpoint labels requests that matched no route, keeping metric cardinality bounded
const unmatchedEndpoint = "unmatched"

type contextKey int

const (
	requestIDKey contextKey = iota
	tierKey
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestIDMiddleware propagates the caller's X-Request-ID or assigns a new one
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLogMiddleware logs each request and records it in metrics under its route template
func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		endpoint := unmatchedEndpoint
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}
		metrics.RecordHTTPRequest(endpoint, rec.status, duration)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", duration).
			Str("request_id", requestIDFromContext(r.Context())).
			Msg("Request handled")
	})
}

// withTier resolves the caller's tier from the API key and applies a rate limit.
// The limit is that of limitTier when it names a tier, else that of the caller's tier.
func (s *Server) withTier(next http.HandlerFunc, limitTier string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tier, err := apikeys.Classify(r.Header.Get(headerAPIKey))
		if err != nil {
			s.sendError(w, err)
			return
		}

		limitedAs := tier
		if limitTier != "" {
			limitedAs = apikeys.ParseTier(limitTier)
		}

		decision := s.limiter.Allow(s.clientIdentity(r), limitedAs)
		setRateLimitHeaders(w, decision.Limit, decision.Remaining, decision.ResetAfter)
		if !decision.Allowed {
			metrics.RecordRateLimitHit(limitedAs.String())
			s.sendError(w, &RateLimitError{Tier: limitedAs, RetryAfter: decision.ResetAfter})
			return
		}

		ctx := context.WithValue(r.Context(), tierKey, tier)
		next(w, r.WithContext(ctx))
	})
}

// clientIdentity returns the caller's network origin used to partition rate limits
func (s *Server) clientIdentity(r *http.Request) string {
	if s.cfg.Server.TrustProxy {
		if forwarded := r.Header.Get(headerForwardedFor); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, limit, remaining int, resetAfter time.Duration) {
	w.Header().Set(headerRateLimitLimit, strconv.Itoa(limit))
	w.Header().Set(headerRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(headerRateLimitReset, strconv.Itoa(int(math.Ceil(resetAfter.Seconds()))))
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func tierFromContext(ctx context.Context) apikeys.Tier {
	if tier, ok := ctx.Value(tierKey).(apikeys.Tier); ok {
		return tier
	}
	return apikeys.TierFree
}

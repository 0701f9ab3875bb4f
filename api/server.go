package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/status-im/price-proxy/apikeys"
	"github.com/status-im/price-proxy/clock"
	"github.com/status-im/price-proxy/config"
	"github.com/status-im/price-proxy/interfaces"
	"github.com/status-im/price-proxy/logger"
	"github.com/status-im/price-proxy/ratelimit"
)

type Server struct {
	cfg           *config.Config
	pricesService interfaces.PricesService
	keyStore      *apikeys.Store
	limiter       *ratelimit.Limiter
	clock         clock.Clock
	startedAt     time.Time
	log           zerolog.Logger
	server        *http.Server
}

func New(cfg *config.Config, pricesService interfaces.PricesService, keyStore *apikeys.Store, limiter *ratelimit.Limiter, clk clock.Clock) *Server {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Server{
		cfg:           cfg,
		pricesService: pricesService,
		keyStore:      keyStore,
		limiter:       limiter,
		clock:         clk,
		startedAt:     clk.Now(),
		log:           logger.Component("api"),
	}
}

// Handler builds the router with all endpoints and middleware
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestIDMiddleware, s.accessLogMiddleware)

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	router.Handle("/prices", s.withTier(s.handlePrices, s.cfg.PricesLimitTier)).Methods(http.MethodGet)
	router.Handle("/prices/{id}", s.withTier(s.handlePriceByID, "")).Methods(http.MethodGet)

	router.HandleFunc("/generate-key", s.handleGenerateKey).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler())

	// router.Use middleware only wraps matched routes
	router.NotFoundHandler = s.requestIDMiddleware(s.accessLogMiddleware(http.HandlerFunc(s.handleNotFound)))
	router.MethodNotAllowedHandler = s.requestIDMiddleware(s.accessLogMiddleware(http.HandlerFunc(s.handleMethodNotAllowed)))

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", headerAPIKey, headerRequestID},
		ExposedHeaders: []string{
			headerRequestID, "ETag", "Cache-Status",
			headerRateLimitLimit, headerRateLimitRemaining, headerRateLimitReset,
		},
		MaxAge: 300,
	})

	return corsHandler(router)
}

func (s *Server) Start(ctx context.Context) error {
	addr := ":" + strconv.Itoa(s.cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info().Str("addr", listener.Addr().String()).Msg("Server starting")
	s.log.Info().Msg("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("Server error")
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server == nil {
		return
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error().Err(err).Msg("Error shutting down server")
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/status-im/price-proxy/config"
	"github.com/status-im/price-proxy/core"
	"github.com/status-im/price-proxy/logger"
)

func main() {
	configPath := "config.yaml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	logger.SetGlobalLogger(logger.New(cfg.Logging))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up services")
	}

	if err := registry.StartAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start services")
	}

	log.Info().
		Int("port", cfg.Server.Port).
		Str("rate_limit_scope", cfg.RateLimitScope).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Price proxy running")

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Received shutdown signal, stopping services...")
	cancel()
	registry.StopAll()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Belphemur/TorecSubtitles/internal/config"
	grpcserver "github.com/Belphemur/TorecSubtitles/internal/grpc"
	"github.com/Belphemur/TorecSubtitles/internal/metrics"
	"github.com/Belphemur/TorecSubtitles/internal/provider"
	"github.com/Belphemur/TorecSubtitles/internal/release"
	"github.com/Belphemur/TorecSubtitles/internal/reporting"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("torec_domain", cfg.TorecDomain).
		Bool("authenticated", cfg.Username != "").
		Str("cache_type", cfg.Cache.Type).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	flush, err := reporting.Init(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialise Sentry")
	}
	defer flush()

	p, err := provider.NewTorecProvider(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid provider configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Initialize(ctx); err != nil {
		reporting.Capture(err)
		flush()
		logger.Fatal().Err(err).Msg("Failed to initialise provider")
	}
	defer func() {
		termCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := p.Terminate(termCtx); err != nil {
			reporting.Capture(err)
			logger.Error().Err(err).Msg("Failed to terminate provider")
		}
	}()

	grpcServer := grpcserver.NewGRPCServer(p, release.NewGuesser())

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		logger.Error().Err(err).Str("address", address).Msg("Failed to create listener")
		return
	}

	logger.Info().Str("address", address).Msg("Starting gRPC server")

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received shutdown signal")
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		reporting.Capture(err)
		logger.Error().Err(err).Msg("Failed to serve gRPC")
		return
	}

	logger.Info().Msg("Server stopped gracefully")
}

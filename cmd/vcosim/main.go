// Package main runs the portal API simulator as a standalone dev server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sdwanops/vcoctl/internal/vcosim"
)

var version = "dev"

func main() {
	listenAddr := envOrDefault("VCOSIM_LISTEN", ":8080")
	username := envOrDefault("VCOSIM_USERNAME", "super@velocloud.net")
	password := envOrDefault("VCOSIM_PASSWORD", "velocloud")
	token := envOrDefault("VCOSIM_TOKEN", "simtoken")

	level, err := zerolog.ParseLevel(envOrDefault("VCOSIM_LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	logger := log.With().Str("component", "main").Logger()
	logger.Info().Str("version", version).Msg("starting vcosim")
	logger.Warn().Msg("vcosim serves canned fixtures over plain HTTP; development use only")

	sim := vcosim.New(vcosim.Config{
		Username: username,
		Password: password,
		Token:    token,
	})

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           sim.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", listenAddr).Msg("HTTP server listening")
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case serveErr := <-errCh:
		logger.Error().Err(serveErr).Msg("HTTP server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error().Err(shutdownErr).Msg("HTTP server shutdown error")
	}
	logger.Info().Msg("server stopped gracefully")
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

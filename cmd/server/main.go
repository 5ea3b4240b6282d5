package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("starting storefront service",
		zap.String("http_port", config.HTTPPort),
		zap.Int("journal_capacity", config.JournalCapacity),
	)

	serviceOpts, err := services.NewServiceOptions(services.Config{
		Products:        services.DefaultProducts(),
		JournalCapacity: config.JournalCapacity,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	httpServer := &http.Server{
		Addr:    ":" + config.HTTPPort,
		Handler: serviceOpts.Handler.Mux(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	return nil
}

// Config holds server configuration.
type Config struct {
	HTTPPort        string
	JournalCapacity int
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	journalCapacity := 256
	if capStr := os.Getenv("JOURNAL_CAPACITY"); capStr != "" {
		if parsed, err := strconv.Atoi(capStr); err == nil && parsed > 0 {
			journalCapacity = parsed
		}
	}

	return Config{
		HTTPPort:        httpPort,
		JournalCapacity: journalCapacity,
	}
}

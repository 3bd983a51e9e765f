package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"qr-redirect/internal/qr"
	httpdelivery "qr-redirect/internal/redirect/delivery/http"
	"qr-redirect/internal/redirect/repository/memory"
	"qr-redirect/internal/redirect/usecase"

	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

// getEnv retrieves an environment variable or returns the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Read configuration from environment variables
	port := getEnv("PORT", "5000")
	baseURL := os.Getenv("BASE_URL") // optional; empty falls back to the request host
	qrSizeStr := getEnv("QR_SIZE", strconv.Itoa(qr.DefaultSize))

	qrSize, err := strconv.Atoi(qrSizeStr)
	if err != nil || qrSize <= 0 {
		logger.Fatal("invalid QR_SIZE value", zap.String("value", qrSizeStr))
	}

	// Wire dependencies
	registry := memory.NewRegistry()
	service := usecase.NewRedirectService(registry, logger)
	encoder := qr.NewEncoder(qrSize)
	handler := httpdelivery.NewHandler(service, encoder, baseURL, logger)
	router := httpdelivery.NewRouter(handler, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting",
			zap.String("port", port),
			zap.String("base_url", baseURL),
			zap.Int("qr_size", qrSize),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	// Graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"northbridge_site_go/config"
	"northbridge_site_go/logging"
	"northbridge_site_go/middleware"
	"northbridge_site_go/server"
	"northbridge_site_go/services"
	"northbridge_site_go/services/i18n"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := i18n.Load(); err != nil {
		logger.Fatal("failed to load translations", zap.Error(err))
	}

	middleware.InitAssetVersions()

	mailer := services.NewMailer(cfg)
	if cfg.EmailTestMode {
		logger.Warn("email test mode is on; contact submissions are logged, not sent")
	}

	e := server.New(cfg, mailer)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wrapads/internal/config"
	"wrapads/internal/db"
	"wrapads/internal/db/migrations"
	"wrapads/internal/routes"
	"wrapads/internal/services"
)

// @title wrapads console API
// @version 1.0
// @description Role consoles for the wrap-advertising marketplace.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wrapads: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL, logger); err != nil {
		return fmt.Errorf("ensure database exists: %w", err)
	}

	database, err := db.New(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(ctx, database.DB, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	client := services.NewMarketplaceClient(cfg.MarketplaceURL)
	client.SetTimeout(cfg.MarketplaceTimeout)
	client.SetRateLimit(cfg.MarketplaceRateLimit, cfg.MarketplaceBurst)
	client.SetLogger(logger.Named("marketplace"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(database.DB, cfg, client, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("marketplace_url", cfg.MarketplaceURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	// Give in-flight requests 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

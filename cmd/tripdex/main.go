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

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/config"
	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/db/memory"
	dbRedis "github.com/kailas-cloud/tripdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/metrics"
	destinationrepo "github.com/kailas-cloud/tripdex/internal/repository/destination"
	tourrepo "github.com/kailas-cloud/tripdex/internal/repository/tour"
	userrepo "github.com/kailas-cloud/tripdex/internal/repository/user"
	"github.com/kailas-cloud/tripdex/internal/token"
	chiTransport "github.com/kailas-cloud/tripdex/internal/transport/chi"
	authuc "github.com/kailas-cloud/tripdex/internal/usecase/auth"
	destinationuc "github.com/kailas-cloud/tripdex/internal/usecase/destination"
	healthuc "github.com/kailas-cloud/tripdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/tripdex/internal/usecase/search"
	touruc "github.com/kailas-cloud/tripdex/internal/usecase/tour"
	"github.com/kailas-cloud/tripdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tripdex API server",
		zap.String("version", version.String()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.RegisterDomainMetrics()

	// Repositories
	destRepo := destinationrepo.New(store, cfg.Storage.KeyPrefix)
	pkgRepo := tourrepo.New(store, cfg.Storage.KeyPrefix)
	userRepo := userrepo.New(store, cfg.Storage.KeyPrefix)

	issuer, err := token.NewIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("Invalid token settings", zap.Error(err))
	}

	// Use case services
	destSvc := destinationuc.New(destRepo)
	pkgSvc := touruc.New(pkgRepo)
	searchSvc := searchuc.New(destRepo, pkgRepo, searchuc.Config{
		SubqueryTimeout:    cfg.Search.SubqueryTimeout(),
		DefaultSuggestions: cfg.Search.SuggestionLimit,
		MaxSuggestions:     cfg.Search.MaxSuggestionLimit,
	})
	authSvc, err := authuc.New(userRepo, issuer, authuc.Config{
		AdminEmails: cfg.Auth.AdminEmails,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	if err != nil {
		logger.Fatal("Failed to create auth service", zap.Error(err))
	}
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(destSvc, pkgSvc, searchSvc, authSvc, healthSvc, logger).
		WithAuthRateLimit(cfg.Auth.LoginRatePerMinute)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore creates the configured database backend.
func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Addrs,
			Username:   cfg.Username,
			Password:   cfg.Password,
			Standalone: cfg.Standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return s, nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/kisan-api/internal/config"
	"github.com/dimitrije/kisan-api/internal/logging"
	"github.com/dimitrije/kisan-api/internal/metrics"
	appmw "github.com/dimitrije/kisan-api/internal/middleware"
	"github.com/dimitrije/kisan-api/internal/router"
	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	collector := metrics.NewCollector("kisan")

	backend, err := store.Open(ctx, cfg.Store, true)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	st := metrics.NewInstrumentedStore(backend, collector)
	defer st.Close()

	if cfg.SeedOnStart {
		if _, err := services.NewSeeder(st, logger).Seed(ctx); err != nil {
			logger.Fatal("Failed to seed store", zap.Error(err))
		}
	}

	var adminValidator appmw.AdminValidator
	if cfg.AdminAuthEnabled() {
		adminValidator = services.NewJWTService(cfg.AdminJWTSecret, cfg.AdminTokenExpiry)
	} else {
		logger.Warn("ADMIN_JWT_SECRET is not set, record changes are not authenticated")
	}

	handler := router.New(router.Options{
		Store:           st,
		Metrics:         collector,
		Logger:          logger,
		Admin:           adminValidator,
		ListLimit:       cfg.ListLimit,
		WeatherLocation: cfg.DefaultWeatherLocation,
		Production:      cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr), zap.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           collector.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("Metrics server starting", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}
}

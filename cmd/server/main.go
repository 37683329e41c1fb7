package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cesargomez89/topmovies/internal/app"
	"github.com/cesargomez89/topmovies/internal/catalog"
	"github.com/cesargomez89/topmovies/internal/config"
	"github.com/cesargomez89/topmovies/internal/constants"
	httpapp "github.com/cesargomez89/topmovies/internal/http"
	"github.com/cesargomez89/topmovies/internal/logger"
	"github.com/cesargomez89/topmovies/internal/metrics"
	"github.com/cesargomez89/topmovies/internal/store"
	"github.com/cesargomez89/topmovies/internal/worker"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(appLogger.Logger)

	// Initialize DB
	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck // deferred cleanup

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize Provider Manager
	providerManager, err := catalog.NewProviderManager(catalog.Options{
		Kind:        cfg.Provider,
		BaseURL:     cfg.TMDBBaseURL,
		ImageURL:    cfg.TMDBImageURL,
		APIKey:      cfg.TMDBAPIKey,
		Language:    cfg.TMDBLanguage,
		HTTPTimeout: cfg.HTTPTimeout,
		MaxAttempts: cfg.MaxAttempts,
		Cache:       db,
		CacheTTL:    cfg.CacheTTL,
		Recorder:    appMetrics,
		Logger:      appLogger.WithComponent("catalog"),
	})
	if err != nil {
		appLogger.Error("Failed to init catalog provider", "error", err)
		os.Exit(1)
	}

	// Initialize Worker
	if cfg.CacheTTL > 0 {
		w := worker.NewWorker(db, constants.DefaultCachePurgeEvery, appLogger)
		w.Start()
		defer w.Stop()
	}

	// Initialize Services
	movieService := app.NewMovieService(db, providerManager.GetProvider(), appLogger)
	movieService.Counter = appMetrics

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	h := httpapp.NewHandler(movieService, db, appMetrics, appLogger)
	h.RegisterRoutes(r)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		appLogger.Info("Server listening", "addr", srv.Addr, "provider", providerManager.Kind(), "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	appLogger.Info("Server exiting")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/adapters/coindesk"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	"github.com/SscSPs/bitcoin_price_app/internal/core/services"
	"github.com/SscSPs/bitcoin_price_app/internal/handlers"
	"github.com/SscSPs/bitcoin_price_app/internal/middleware"
	"github.com/SscSPs/bitcoin_price_app/internal/platform/config"
	"github.com/SscSPs/bitcoin_price_app/internal/platform/metrics"
	"github.com/SscSPs/bitcoin_price_app/internal/repositories/database/memory"
	"github.com/SscSPs/bitcoin_price_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bitcoin_price_app/migrations"
	"github.com/SscSPs/bitcoin_price_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Bitcoin Price API
// @version 1.0
// @description Bitcoin price index normalization and currency reference data.

// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize reference store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	feedMetrics := metrics.NewFeedMetrics(registry)

	fetcher := coindesk.NewClient(coindesk.Config{
		URL:            cfg.CoinDesk.URL,
		ConnectTimeout: cfg.CoinDesk.ConnectTimeout,
		ReadTimeout:    cfg.CoinDesk.ReadTimeout,
		UserAgent:      cfg.CoinDesk.UserAgent,
	})

	serviceContainer := services.NewServiceContainer(repos, fetcher, feedMetrics)

	if cfg.SeedCurrencies {
		if err := serviceContainer.StaticData.InitializeStaticData(ctx); err != nil {
			logger.Error("Failed to seed reference currencies", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	lim, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{
		Limiter: lim,
		Metrics: metrics.Handler(registry),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to gracefully shutdown", slog.String("error", err.Error()))
	}
}

// buildRepositories selects the Postgres store when PGSQL_URL is set and the
// in-memory store otherwise. The returned func releases the store.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory reference store")
		return portsrepo.RepositoryProvider{CurrencyRepo: memory.NewCurrencyRepository()}, func() {}, nil
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "Location"}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

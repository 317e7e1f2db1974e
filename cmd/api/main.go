// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	goredis "github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/creatorcash/internal/admin"
	"github.com/carterperez-dev/creatorcash/internal/catalog"
	"github.com/carterperez-dev/creatorcash/internal/commerce"
	"github.com/carterperez-dev/creatorcash/internal/config"
	"github.com/carterperez-dev/creatorcash/internal/core"
	"github.com/carterperez-dev/creatorcash/internal/health"
	"github.com/carterperez-dev/creatorcash/internal/ledger"
	"github.com/carterperez-dev/creatorcash/internal/middleware"
	"github.com/carterperez-dev/creatorcash/internal/payment"
	"github.com/carterperez-dev/creatorcash/internal/server"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"storage", cfg.Storage.Driver,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	var (
		db          *core.Database
		ledgerStore ledger.Store
		dbStats     func() sql.DBStats
		dbPing      func(ctx context.Context) error
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err = core.NewDatabase(ctx, cfg.Storage.Postgres)
		if err != nil {
			return err
		}
		logger.Info("database connected",
			"max_open_conns", cfg.Storage.Postgres.MaxOpenConns,
			"max_idle_conns", cfg.Storage.Postgres.MaxIdleConns,
		)

		ledgerStore, err = ledger.NewPostgresStore(ctx, db.DB)
		if err != nil {
			return err
		}
		dbStats = db.Stats
		dbPing = db.Ping
	default:
		ledgerStore = ledger.NewMemoryStore()
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var redisClient *goredis.Client
	if redis != nil {
		redisClient = redis.Client
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	}

	metrics := core.NewMetrics()
	gateway := payment.NewSimulator(cfg.Payment.SuccessRate, cfg.Payment.Latency)

	catalogStore := catalog.NewMemoryStore(catalog.Seed()...)
	catalogSvc := catalog.NewService(catalogStore)
	catalogHandler := catalog.NewHandler(catalogSvc)

	commerceSvc := commerce.NewService(
		catalogSvc,
		ledgerStore,
		gateway,
		metrics,
		logger,
	).WithCurrency(cfg.Payment.Currency)
	commerceHandler := commerce.NewHandler(commerceSvc)

	var redisChecker health.Checker
	if redis != nil {
		redisChecker = redis
	}
	healthHandler := health.NewHandler(ledgerStore, redisChecker)

	adminCfg := admin.HandlerConfig{
		CatalogService:  catalogSvc,
		CommerceService: commerceSvc,
		DBStats:         dbStats,
		DBPing:          dbPing,
	}
	if redis != nil {
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Method("GET", "/metrics", metrics.Handler())

	router.Route("/v1", func(r chi.Router) {
		catalogHandler.RegisterRoutes(r)
		commerceHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if redis != nil {
		if err := redis.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "adbroker/internal/adapter/http"
	"adbroker/internal/adapter/metrics"
	"adbroker/internal/adapter/postgres"
	redisadapter "adbroker/internal/adapter/redis"
	"adbroker/internal/adapter/usecase"
	"adbroker/internal/config"
	"adbroker/internal/core/port"
	"adbroker/internal/db"
	"adbroker/internal/geoip"
	"adbroker/internal/observability"
)

// main is the entry point of the ad selection service. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires repositories, cache and the selection use case, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	out := cfg.Log.Output()
	if c, ok := out.(io.Closer); ok {
		defer c.Close()
	}
	logger := cfg.Log.NewSlog(out)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := observability.InitTracing(ctx, logger, cfg.Tracing, cfg.Env)
	if err != nil {
		logger.Error("tracing init error", slog.Any("error", err))
		return
	}
	defer shutdownTracing()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var rules port.TargetingRuleStore = postgres.NewTargetingRepository(pool)
	if cfg.Redis.Enabled() {
		rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, serving rules without cache", slog.Any("error", err))
		} else {
			defer rdb.Close()
			rules = redisadapter.NewCachedRuleStore(rdb, rules, cfg.Redis.RuleTTL, logger)
			logger.Info("targeting rule cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	prom := metrics.NewPrometheus(prometheus.DefaultRegisterer)

	svc := usecase.NewSelectionUseCase(
		postgres.NewPlacementRepository(pool),
		postgres.NewCampaignRepository(pool),
		usecase.NewRuleMatcher(rules),
		usecase.Options{
			MaxConcurrency:   cfg.Selection.MaxConcurrency,
			MatchTimeout:     cfg.Selection.MatchTimeout,
			DirectoryTimeout: cfg.Selection.DirectoryTimeout,
			FailOpen:         cfg.Selection.FailOpen,
		},
		logger,
		prom,
	)

	opts := []httpadapter.Option{
		httpadapter.WithRequestObserver(prom),
		httpadapter.WithMetricsHandler(promhttp.Handler()),
	}
	if cfg.GeoIP.Path != "" {
		geo, err := geoip.Open(cfg.GeoIP.Path)
		if err != nil {
			logger.Warn("geoip disabled", slog.String("path", cfg.GeoIP.Path), slog.Any("error", err))
		} else {
			defer geo.Close()
			opts = append(opts, httpadapter.WithGeoResolver(geo))
		}
	}

	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

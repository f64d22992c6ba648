// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Webtoon Reader HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the store: PostgreSQL (with migrations) or the in-memory database.
//  4. Connect to Redis when a cache is configured.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/webtoon/internal/api"
	"github.com/taibuivan/webtoon/internal/core/chapter"
	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/core/stats"
	"github.com/taibuivan/webtoon/internal/platform/config"
	"github.com/taibuivan/webtoon/internal/platform/constants"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
	"github.com/taibuivan/webtoon/internal/platform/migration"
	pgstore "github.com/taibuivan/webtoon/internal/platform/postgres"
	redisstore "github.com/taibuivan/webtoon/internal/platform/redis"
)

// repositories is the storage backend selected by STORE_DRIVER.
type repositories struct {
	comics   comic.Repository
	chapters chapter.Repository
	stats    stats.Repository
	ping     func(ctx context.Context) error
	close    func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
		slog.Any("cors_origins", cfg.AllowedOrigins()),
	)

	// Root context for startup and background workers.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.ShutdownTimeout)
	defer startupCancel()

	// ── 3. Store ──────────────────────────────────────────────────────────
	repos, err := openStore(startupCtx, cfg, log)
	must(log, err, "open store")
	defer repos.close()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *goredis.Client
	var comicCache chapter.ComicCache
	comicRepository := repos.comics

	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		cached := comic.NewCachedRepository(repos.comics, rdb, cfg.CacheTTL, log)
		comicRepository = cached
		comicCache = cached
	}

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	health := api.HealthDependencies{CheckDatabase: repos.ping}
	if rdb != nil {
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	comicService := comic.NewService(comicRepository, log)
	chapterService := chapter.NewService(repos.chapters, comicService, comicCache, log)
	statsService := stats.NewService(repos.stats, log)

	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comic:     comic.NewHandler(comicService),
		Chapter:   chapter.NewHandler(chapterService),
		Stats:     stats.NewHandler(statsService),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		return
	}

	log.Info("server_stopped")
}

// openStore builds the repositories for the configured driver.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("memory_store_selected", slog.String("detail", "data is lost on restart"))
		db := memdb.New()
		return &repositories{
			comics:   comic.NewMemoryRepository(db),
			chapters: chapter.NewMemoryRepository(db),
			stats:    stats.NewMemoryRepository(db),
			close:    func() {},
		}, nil
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	if err := migration.RunUp(cfg.DatabaseURL, log); err != nil {
		pool.Close()
		return nil, err
	}

	return &repositories{
		comics:   comic.NewPostgresRepository(pool),
		chapters: chapter.NewPostgresRepository(pool),
		stats:    stats.NewPostgresRepository(pool),
		ping: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		close: func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		},
	}, nil
}

// newLogger returns the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

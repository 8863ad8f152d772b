// Package app assembles the stats service from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/config"
	"github.com/krazyminecraft/stats-api/internal/handlers"
	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/source"
)

// App holds the wired service and the resources it owns.
type App struct {
	Stats  logic.StatsService
	Checks map[string]handlers.CheckFunc

	closers []func()
	logger  *zap.SugaredLogger
}

// Build connects the configured directory, fetcher chain and collector.
func Build(ctx context.Context, cfg *config.Config, collector logic.Collector, logger *zap.Logger) (*App, error) {
	a := &App{
		Checks: map[string]handlers.CheckFunc{},
		logger: logger.Sugar(),
	}

	directory, err := a.directory(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Checks["directory"] = func(ctx context.Context) error {
		_, err := directory.Load(ctx)
		return err
	}

	fetcher, err := a.fetcher(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Stats = logic.NewStatsService(logic.ServiceConfig{
		Directory: directory,
		Fetcher:   fetcher,
		Collector: collector,
		Logger:    logger,
	})
	return a, nil
}

func (a *App) directory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (logic.DirectoryLoader, error) {
	switch cfg.DirectorySource {
	case config.SourceHTTP:
		return source.NewHTTPDirectory(cfg.DirectoryURL, cfg.FetchTimeout, logger), nil
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.Checks["postgres"] = pool.Ping
		return source.NewPostgresDirectory(pool, logger), nil
	default:
		return source.NewFileDirectory(cfg.DirectoryPath, logger), nil
	}
}

func (a *App) fetcher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (logic.Fetcher, error) {
	var fetcher logic.Fetcher
	switch cfg.StatsSource {
	case config.SourceHTTP:
		fetcher = source.NewHTTPFetcher(cfg.StatsBaseURL, cfg.FetchTimeout)
	default:
		fetcher = source.NewFileFetcher(cfg.StatsDir)
	}

	if cfg.FetchRatePerSecond > 0 {
		fetcher = source.NewRateLimitedFetcher(fetcher, cfg.FetchRatePerSecond, cfg.FetchBurst)
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		a.closers = append(a.closers, func() { client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			// The cache is optional; fetches fall through while it is down
			a.logger.Warnw("Redis unreachable, continuing without a warm cache", "error", err)
		}
		cached := source.NewCachedFetcher(fetcher, source.NewRedisCacheStore(client), cfg.CacheTTL, logger)
		a.Checks["redis"] = cached.Ping
		fetcher = cached
	}
	return fetcher, nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

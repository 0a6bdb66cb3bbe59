package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"site-finder-service/internal/adapters/cache"
	"site-finder-service/internal/adapters/upstream"
	"site-finder-service/internal/config"
	"site-finder-service/internal/platform/db"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// Components are the adapters behind the service ports, ready for use.
type Components struct {
	Locator  ports.SystemLocator
	Searcher ports.SystemSearcher
	Catalog  ports.SiteCatalog

	closers []func() error
}

// Close releases database and redis connections.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			slog.Warn("close component failed", "err", err)
		}
	}
}

// Build wires concrete adapters (EDDB, Canonn, caches) behind the ports.
func Build(ctx context.Context, cfg config.Config, metrics *obs.Metrics) (_ *Components, err error) {
	c := &Components{}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	systemsClient, err := upstream.NewClient("eddb", cfg.SystemsAPIURL, cfg.HTTPTimeout, metrics)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	searchClient, err := upstream.NewClient("eddb-search", cfg.SearchAPIURL, cfg.HTTPTimeout, metrics)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	sitesClient, err := upstream.NewClient("canonn", cfg.SitesAPIURL, cfg.HTTPTimeout, metrics)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	eddb, err := upstream.NewEDDBSystemLocator(systemsClient)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	if c.Searcher, err = upstream.NewEDDBSystemSearcher(searchClient); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	canonn, err := upstream.NewCanonnSiteCatalog(sitesClient, cfg.SitesLimit)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	store, err := c.openCoordsCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	if c.Locator, err = cache.NewCachingLocator(eddb, store, cfg.CoordsMemo); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	c.Catalog = canonn
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("build: parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		c.closers = append(c.closers, rdb.Close)

		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("build: ping redis: %w", err)
		}
		if c.Catalog, err = cache.NewRedisSiteCatalog(canonn, rdb, cfg.SitesCacheTTL); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}

	slog.Info("components ready",
		"cache_driver", cfg.CacheDriver,
		"redis", cfg.RedisURL != "",
		"systems_api", cfg.SystemsAPIURL,
		"sites_api", cfg.SitesAPIURL,
	)
	return c, nil
}

// openCoordsCache returns nil (no persistent tier) for CACHE_DRIVER=none.
func (c *Components) openCoordsCache(cfg config.Config) (ports.CoordsCache, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.CacheDriver {
	case config.CacheNone:
		return nil, nil
	case config.CachePostgres:
		if conn, err = db.Open(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		c.closers = append(c.closers, conn.Close)
		if err := cache.InitPostgresSchema(conn); err != nil {
			return nil, err
		}
		return cache.NewSQLCoordsCache(conn), nil
	default:
		if conn, err = db.OpenSQLite(cfg.DBPath); err != nil {
			return nil, err
		}
		c.closers = append(c.closers, conn.Close)
		if err := cache.InitSqliteSchema(conn); err != nil {
			return nil, err
		}
		return cache.NewSqliteCoordsCache(conn), nil
	}
}

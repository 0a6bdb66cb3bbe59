package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type CacheDriver string

const (
	CacheNone     CacheDriver = "none"
	CacheSQLite   CacheDriver = "sqlite"
	CachePostgres CacheDriver = "postgres"
)

// Config holds the settings shared by the server and CLI binaries.
type Config struct {
	Port string

	SystemsAPIURL string
	SearchAPIURL  string
	SitesAPIURL   string
	SitesLimit    int
	HTTPTimeout   time.Duration

	CacheDriver   CacheDriver
	DBPath        string
	DatabaseURL   string
	RedisURL      string
	SitesCacheTTL time.Duration
	CoordsMemo    int

	LogLevel       string
	LogFormat      string
	TracingEnabled bool
}

// LoadDotEnv reads .env into the process environment when the file exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:          Get("PORT", "8080"),
		SystemsAPIURL: Get("SYSTEMS_API_URL", "https://eddbapi.kodeblox.com"),
		SearchAPIURL:  Get("SEARCH_API_URL", "https://eddb.io"),
		SitesAPIURL:   Get("SITES_API_URL", "https://api.canonn.tech"),
		DBPath:        Get("DB_PATH", "data/cache.db"),
		DatabaseURL:   Get("DATABASE_URL", ""),
		RedisURL:      Get("REDIS_URL", ""),
		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.SitesLimit, err = getInt("SITES_LIMIT", 10000); err != nil {
		return Config{}, err
	}
	if cfg.CoordsMemo, err = getInt("COORDS_MEMO_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SitesCacheTTL, err = getDuration("SITES_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.TracingEnabled, err = getBool("TRACING_ENABLED", false); err != nil {
		return Config{}, err
	}

	switch d := CacheDriver(strings.ToLower(Get("CACHE_DRIVER", string(CacheSQLite)))); d {
	case CacheNone, CacheSQLite:
		cfg.CacheDriver = d
	case CachePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: CACHE_DRIVER=postgres requires DATABASE_URL")
		}
		cfg.CacheDriver = d
	default:
		return Config{}, fmt.Errorf("load config: unsupported CACHE_DRIVER %q", d)
	}

	return cfg, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("load config: %s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("load config: %s must be a positive duration, got %q", key, raw)
	}
	return v, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("load config: %s must be a boolean, got %q", key, raw)
	}
	return v, nil
}

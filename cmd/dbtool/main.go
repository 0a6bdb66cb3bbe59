package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"site-finder-service/internal/adapters/cache"
	"site-finder-service/internal/config"
	"site-finder-service/internal/platform/db"
	"strings"
)

// dbtool initializes the coordinate cache schema ahead of deployment.
func main() {
	config.LoadDotEnv()

	driver := flag.String("driver", config.Get("CACHE_DRIVER", "sqlite"), "cache driver: sqlite or postgres")
	flag.Parse()

	var (
		conn       *sql.DB
		err        error
		initSchema func(*sql.DB) error
	)

	switch strings.ToLower(*driver) {
	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			slog.Error("DATABASE_URL is required")
			os.Exit(1)
		}
		conn, err = db.Open(databaseURL)
		initSchema = cache.InitPostgresSchema
	case "sqlite":
		conn, err = db.OpenSQLite(config.Get("DB_PATH", "data/cache.db"))
		initSchema = cache.InitSqliteSchema
	default:
		slog.Error("unsupported driver", "driver", *driver)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	slog.Info("Initializing cache schema...", "driver", *driver)
	if err := initSchema(conn); err != nil {
		slog.Error("schema initialization failed", "err", err)
		conn.Close()
		os.Exit(1)
	}
	slog.Info("Schema ready.")
}

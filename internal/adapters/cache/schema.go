package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

const createSqliteCoordsQuery = `
CREATE TABLE IF NOT EXISTS system_coords_cache (
	name TEXT PRIMARY KEY,
	system_id INTEGER NOT NULL,
	system_name TEXT NOT NULL,
	x REAL NOT NULL,
	y REAL NOT NULL,
	z REAL NOT NULL,
	fetched_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const createPostgresCoordsQuery = `
CREATE TABLE IF NOT EXISTS system_coords_cache (
	name TEXT PRIMARY KEY,
	system_id BIGINT NOT NULL,
	system_name TEXT NOT NULL,
	x DOUBLE PRECISION NOT NULL,
	y DOUBLE PRECISION NOT NULL,
	z DOUBLE PRECISION NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Initialize the SQLite coordinate cache schema.
func InitSqliteSchema(db *sql.DB) error {
	return initSchema(db, "init sqlite schema", []string{createSqliteCoordsQuery})
}

// Initialize the postgres coordinate cache schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, "init postgres schema", []string{createPostgresCoordsQuery})
}

func initSchema(db *sql.DB, op string, statements []string) error {
	if db == nil {
		return fmt.Errorf("%s: %w", op, errors.New("DB is nil"))
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%s: exec statement #%d: %w", op, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}

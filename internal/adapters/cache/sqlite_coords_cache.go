package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/platform/obs"
	"strings"
)

// SQLite backed cache of resolved reference systems.
// Keys are expected to be normalized by the caller.
type SqliteCoordsCache struct {
	DB *sql.DB
}

func NewSqliteCoordsCache(db *sql.DB) *SqliteCoordsCache {
	return &SqliteCoordsCache{DB: db}
}

// Fetch the cached system for name; ok is false on a miss.
func (s *SqliteCoordsCache) Get(
	ctx context.Context,
	name string,
) (_ domain.ReferenceSystem, _ bool, err error) {
	ctx, done := obs.Time(ctx, "coords.sqlite.Get")
	defer done(&err)

	if s.DB == nil {
		return domain.ReferenceSystem{}, false, errors.New("coords cache: db is nil")
	}
	if strings.TrimSpace(name) == "" {
		return domain.ReferenceSystem{}, false, errors.New("get coords cache: name must not be empty")
	}

	q := `
	SELECT system_id, system_name, x, y, z
	FROM system_coords_cache
	WHERE name = ?;
	`

	var sys domain.ReferenceSystem
	err = s.DB.QueryRowContext(ctx, q, name).Scan(&sys.ID, &sys.Name, &sys.Coords.X, &sys.Coords.Y, &sys.Coords.Z)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReferenceSystem{}, false, nil
	}
	if err != nil {
		return domain.ReferenceSystem{}, false, fmt.Errorf("get coords cache: query system_coords_cache table: %w", err)
	}

	return sys, true, nil
}

// Store a resolved system under name, replacing any previous entry.
func (s *SqliteCoordsCache) Put(ctx context.Context, name string, sys domain.ReferenceSystem) error {
	if s.DB == nil {
		return errors.New("coords cache: db is nil")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("insert coords cache: name must not be empty")
	}
	if !sys.Coords.Valid() {
		return fmt.Errorf("insert coords cache name=%q: %w", name, domain.ErrInvalidCoordinates)
	}

	q := `
	INSERT OR REPLACE INTO system_coords_cache (
		name,
		system_id,
		system_name,
		x,
		y,
		z,
		fetched_at
	)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`
	if _, err := s.DB.ExecContext(ctx, q, name, sys.ID, sys.Name, sys.Coords.X, sys.Coords.Y, sys.Coords.Z); err != nil {
		return fmt.Errorf("insert coords cache name=%q: %w", name, err)
	}

	return nil
}

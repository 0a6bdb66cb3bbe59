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

// SQLCoordsCache is a postgres-backed cache of resolved reference systems.
type SQLCoordsCache struct {
	DB *sql.DB
}

func NewSQLCoordsCache(db *sql.DB) *SQLCoordsCache {
	return &SQLCoordsCache{DB: db}
}

// Fetch the cached system for name; ok is false on a miss.
func (s *SQLCoordsCache) Get(
	ctx context.Context,
	name string,
) (_ domain.ReferenceSystem, _ bool, err error) {
	ctx, done := obs.Time(ctx, "coords.sql.Get")
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
	WHERE name = $1;
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
func (s *SQLCoordsCache) Put(ctx context.Context, name string, sys domain.ReferenceSystem) error {
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
	INSERT INTO system_coords_cache (name, system_id, system_name, x, y, z, fetched_at)
	VALUES ($1, $2, $3, $4, $5, $6, now())
	ON CONFLICT (name) DO UPDATE
	SET system_id = EXCLUDED.system_id,
		system_name = EXCLUDED.system_name,
		x = EXCLUDED.x,
		y = EXCLUDED.y,
		z = EXCLUDED.z,
		fetched_at = EXCLUDED.fetched_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, name, sys.ID, sys.Name, sys.Coords.X, sys.Coords.Y, sys.Coords.Z); err != nil {
		return fmt.Errorf("insert coords cache name=%q: %w", name, err)
	}

	return nil
}

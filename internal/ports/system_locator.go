package ports

import (
	"context"
	"site-finder-service/internal/domain"
)

// Contract for resolving a system name to its galactic coordinates.
type SystemLocator interface {
	// Return the system with the given name, or an error wrapping domain.ErrSystemNotFound.
	LocateSystem(ctx context.Context, name string) (domain.ReferenceSystem, error)
}

// Contract for name-prefix autocomplete over known systems.
type SystemSearcher interface {
	SearchSystems(ctx context.Context, query string) ([]domain.SystemMatch, error)
}

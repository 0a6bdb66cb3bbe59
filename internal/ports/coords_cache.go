package ports

import (
	"context"
	"site-finder-service/internal/domain"
)

// Persistent store of previously resolved reference systems.
// Keys are expected to be normalized by the caller.
type CoordsCache interface {
	Get(ctx context.Context, name string) (domain.ReferenceSystem, bool, error)
	Put(ctx context.Context, name string, sys domain.ReferenceSystem) error
}

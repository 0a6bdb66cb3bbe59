package ports

import (
	"context"
	"site-finder-service/internal/domain"
)

// Port: a boundary for retrieving the flat list of catalogued sites.
type SiteCatalog interface {
	// Return every site record in upstream order.
	ListSites(ctx context.Context) ([]domain.SiteRecord, error)
}

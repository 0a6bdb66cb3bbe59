package services

import (
	"context"
	"errors"
	"fmt"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/ports"
	"strings"
)

type FindNearbyRequest struct {
	Reference string
	Kind      domain.SiteKind
}

// FindNearbySites runs one site query end to end.
//
// The reference system is resolved before the catalog is fetched, and the
// catalog is fetched in full before it is reshaped and ranked. Any failure
// aborts the query; no partial result is returned.
func FindNearbySites(
	ctx context.Context,
	req FindNearbyRequest,
	locator ports.SystemLocator,
	catalog ports.SiteCatalog,
) (_ *domain.NearbyResult, err error) {
	ctx, done := obs.Time(ctx, "services.FindNearbySites")
	defer done(&err)

	if locator == nil || catalog == nil {
		return nil, errors.New("find nearby sites: locator and catalog must be non-nil")
	}

	name := strings.TrimSpace(req.Reference)
	if name == "" {
		return nil, errors.New("find nearby sites: reference system must be non-empty")
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.SiteKindAll
	}

	ref, err := locator.LocateSystem(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find nearby sites: locate reference %q: %w", name, err)
	}

	records, err := catalog.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("find nearby sites: list sites: %w", err)
	}

	systems, err := Reshape(FilterSites(records, kind))
	if err != nil {
		return nil, fmt.Errorf("find nearby sites: %w", err)
	}

	ranked, err := Rank(systems, ref.Coords)
	if err != nil {
		return nil, fmt.Errorf("find nearby sites: %w", err)
	}

	return &domain.NearbyResult{
		Reference: ref,
		Kind:      kind,
		Systems:   ranked,
	}, nil
}

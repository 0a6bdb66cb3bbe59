package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"site-finder-service/internal/domain"
	"strconv"
)

type canonnType struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type canonnSystem struct {
	ID         int64    `json:"id"`
	SystemName string   `json:"systemName"`
	EdsmCoordX *float64 `json:"edsmCoordX"`
	EdsmCoordY *float64 `json:"edsmCoordY"`
	EdsmCoordZ *float64 `json:"edsmCoordZ"`
}

type canonnBody struct {
	ID                int64   `json:"id"`
	BodyName          string  `json:"bodyName"`
	DistanceToArrival float64 `json:"distanceToArrival"`
}

type canonnSite struct {
	ID        int64         `json:"id"`
	SiteID    int64         `json:"siteID"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Type      *canonnType   `json:"type"`
	System    *canonnSystem `json:"system"`
	Body      *canonnBody   `json:"body"`
}

// CanonnSiteCatalog lists thargoid barnacle sites from the Canonn API.
type CanonnSiteCatalog struct {
	client *Client
	limit  int
}

func NewCanonnSiteCatalog(client *Client, limit int) (*CanonnSiteCatalog, error) {
	if client == nil {
		return nil, errors.New("canonn site catalog: client is nil")
	}
	if limit <= 0 {
		limit = 10000
	}
	return &CanonnSiteCatalog{client: client, limit: limit}, nil
}

func (c *CanonnSiteCatalog) ListSites(ctx context.Context) ([]domain.SiteRecord, error) {
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(c.limit))

	var decoded []canonnSite
	if err := c.client.getJSON(ctx, "/tbsites", q, &decoded); err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}

	return toSiteRecords(decoded), nil
}

// toSiteRecords maps wire records onto domain records. Absent parents stay nil
// so the reshaper can reject them; absent coordinates become NaN.
func toSiteRecords(in []canonnSite) []domain.SiteRecord {
	out := make([]domain.SiteRecord, 0, len(in))
	for _, s := range in {
		rec := domain.SiteRecord{
			Site: domain.Site{
				ID:        s.ID,
				SiteID:    s.SiteID,
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
			},
		}
		if s.Type != nil {
			rec.Type = domain.SiteType{ID: s.Type.ID, Type: s.Type.Type}
		}
		if s.System != nil {
			rec.System = &domain.SystemRef{
				ID:   s.System.ID,
				Name: s.System.SystemName,
				Coords: domain.Coord3{
					X: orNaN(s.System.EdsmCoordX),
					Y: orNaN(s.System.EdsmCoordY),
					Z: orNaN(s.System.EdsmCoordZ),
				},
			}
		}
		if s.Body != nil {
			rec.Body = &domain.BodyRef{
				ID:                s.Body.ID,
				Name:              s.Body.BodyName,
				DistanceToArrival: s.Body.DistanceToArrival,
			}
		}
		out = append(out, rec)
	}
	return out
}

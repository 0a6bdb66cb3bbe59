package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSitesKey = "site-finder:tbsites"

// RedisSiteCatalog caches the full upstream site list in redis for ttl.
// Only the upstream response is shared between queries; the system tree is
// still rebuilt from it every time.
type RedisSiteCatalog struct {
	next   ports.SiteCatalog
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisSiteCatalog(next ports.SiteCatalog, client *redis.Client, ttl time.Duration) (*RedisSiteCatalog, error) {
	if next == nil {
		return nil, errors.New("redis site catalog: next catalog is nil")
	}
	if client == nil {
		return nil, errors.New("redis site catalog: client is nil")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisSiteCatalog{next: next, client: client, key: defaultSitesKey, ttl: ttl}, nil
}

func (r *RedisSiteCatalog) ListSites(ctx context.Context) (_ []domain.SiteRecord, err error) {
	ctx, done := obs.Time(ctx, "sites.redis.ListSites")
	defer done(&err)

	raw, err := r.client.Get(ctx, r.key).Bytes()
	switch {
	case err == nil:
		recs, derr := decodeRecords(raw)
		if derr == nil {
			return recs, nil
		}
		slog.WarnContext(ctx, "site cache entry unreadable", "key", r.key, "err", derr)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "site cache read failed", "key", r.key, "err", err)
	}

	recs, err := r.next.ListSites(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := encodeRecords(recs)
	if err != nil {
		slog.WarnContext(ctx, "site cache encode failed", "err", err)
		return recs, nil
	}
	if err := r.client.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "site cache write failed", "key", r.key, "err", err)
	}

	return recs, nil
}

// Wire form of a cached record. Coordinates are pointers because JSON has no NaN.
type cachedRecord struct {
	ID        int64    `json:"id"`
	SiteID    int64    `json:"site_id"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
	TypeID    int64    `json:"type_id"`
	Type      string   `json:"type"`

	System *cachedSystem `json:"system,omitempty"`
	Body   *cachedBody   `json:"body,omitempty"`
}

type cachedSystem struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
	Z    *float64 `json:"z,omitempty"`
}

type cachedBody struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	DistanceToArrival float64 `json:"dta"`
}

func encodeRecords(recs []domain.SiteRecord) ([]byte, error) {
	out := make([]cachedRecord, 0, len(recs))
	for _, r := range recs {
		c := cachedRecord{
			ID:        r.ID,
			SiteID:    r.SiteID,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			TypeID:    r.Type.ID,
			Type:      r.Type.Type,
		}
		if r.System != nil {
			c.System = &cachedSystem{
				ID:   r.System.ID,
				Name: r.System.Name,
				X:    finiteOrNil(r.System.Coords.X),
				Y:    finiteOrNil(r.System.Coords.Y),
				Z:    finiteOrNil(r.System.Coords.Z),
			}
		}
		if r.Body != nil {
			c.Body = &cachedBody{ID: r.Body.ID, Name: r.Body.Name, DistanceToArrival: r.Body.DistanceToArrival}
		}
		out = append(out, c)
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode site records: %w", err)
	}
	return b, nil
}

func decodeRecords(b []byte) ([]domain.SiteRecord, error) {
	var in []cachedRecord
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode site records: %w", err)
	}

	out := make([]domain.SiteRecord, 0, len(in))
	for _, c := range in {
		r := domain.SiteRecord{
			Site: domain.Site{
				ID:        c.ID,
				SiteID:    c.SiteID,
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
				Type:      domain.SiteType{ID: c.TypeID, Type: c.Type},
			},
		}
		if c.System != nil {
			r.System = &domain.SystemRef{
				ID:     c.System.ID,
				Name:   c.System.Name,
				Coords: domain.Coord3{X: nanIfNil(c.System.X), Y: nanIfNil(c.System.Y), Z: nanIfNil(c.System.Z)},
			}
		}
		if c.Body != nil {
			r.Body = &domain.BodyRef{ID: c.Body.ID, Name: c.Body.Name, DistanceToArrival: c.Body.DistanceToArrival}
		}
		out = append(out, r)
	}
	return out, nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nanIfNil(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

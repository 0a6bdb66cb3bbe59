package upstream

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"site-finder-service/internal/domain"
	"strconv"
	"strings"
)

type eddbSystem struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Z    *float64 `json:"z"`
}

type eddbSystemsResponse struct {
	Docs  []eddbSystem `json:"docs"`
	Total int          `json:"total"`
}

// EDDBSystemLocator resolves system names through the EDDB v4 systems API.
type EDDBSystemLocator struct {
	client *Client
}

func NewEDDBSystemLocator(client *Client) (*EDDBSystemLocator, error) {
	if client == nil {
		return nil, errors.New("eddb system locator: client is nil")
	}
	return &EDDBSystemLocator{client: client}, nil
}

// LocateSystem returns the first system the API reports for name.
func (l *EDDBSystemLocator) LocateSystem(ctx context.Context, name string) (domain.ReferenceSystem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ReferenceSystem{}, errors.New("locate system: name must be non-empty")
	}

	q := url.Values{}
	q.Set("name", name)

	var decoded eddbSystemsResponse
	if err := l.client.getJSON(ctx, "/api/v4/systems", q, &decoded); err != nil {
		return domain.ReferenceSystem{}, fmt.Errorf("locate system %q: %w", name, err)
	}

	if len(decoded.Docs) == 0 {
		return domain.ReferenceSystem{}, fmt.Errorf("locate system %q: %w", name, domain.ErrSystemNotFound)
	}

	doc := decoded.Docs[0]
	return domain.ReferenceSystem{
		ID:     doc.ID,
		Name:   doc.Name,
		Coords: domain.Coord3{X: orNaN(doc.X), Y: orNaN(doc.Y), Z: orNaN(doc.Z)},
	}, nil
}

type eddbSearchResult struct {
	ID   json64 `json:"id"`
	Name string `json:"name"`
}

// EDDBSystemSearcher backs reference system autocomplete.
type EDDBSystemSearcher struct {
	client *Client
}

func NewEDDBSystemSearcher(client *Client) (*EDDBSystemSearcher, error) {
	if client == nil {
		return nil, errors.New("eddb system searcher: client is nil")
	}
	return &EDDBSystemSearcher{client: client}, nil
}

func (s *EDDBSystemSearcher) SearchSystems(ctx context.Context, query string) ([]domain.SystemMatch, error) {
	q := url.Values{}
	q.Set("system[name]", query)
	q.Set("system[version]", "2")

	var decoded []eddbSearchResult
	if err := s.client.getJSON(ctx, "/system/search", q, &decoded); err != nil {
		return nil, fmt.Errorf("search systems %q: %w", query, err)
	}

	out := make([]domain.SystemMatch, 0, len(decoded))
	for _, r := range decoded {
		out = append(out, domain.SystemMatch{ID: int64(r.ID), Name: r.Name})
	}
	return out, nil
}

// json64 accepts an integer id encoded either as a JSON number or a string.
type json64 int64

func (j *json64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*j = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", s, err)
	}
	*j = json64(v)
	return nil
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

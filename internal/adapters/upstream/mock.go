package upstream

import (
	"context"
	"fmt"
	"site-finder-service/internal/domain"
	"strings"
)

// MockSystemLocator resolves names from a fixed table (case-insensitive).
type MockSystemLocator struct {
	m     map[string]domain.ReferenceSystem
	Calls int
}

func NewMockSystemLocator(systems ...domain.ReferenceSystem) *MockSystemLocator {
	m := make(map[string]domain.ReferenceSystem, len(systems))
	for _, s := range systems {
		m[strings.ToLower(s.Name)] = s
	}
	return &MockSystemLocator{m: m}
}

func (l *MockSystemLocator) LocateSystem(ctx context.Context, name string) (domain.ReferenceSystem, error) {
	l.Calls++
	s, ok := l.m[strings.ToLower(name)]
	if !ok {
		return domain.ReferenceSystem{}, fmt.Errorf("mock locate %q: %w", name, domain.ErrSystemNotFound)
	}
	return s, nil
}

// MockSiteCatalog returns a fixed record list, or Err when set.
type MockSiteCatalog struct {
	Records []domain.SiteRecord
	Err     error
	Calls   int
}

func (c *MockSiteCatalog) ListSites(ctx context.Context) ([]domain.SiteRecord, error) {
	c.Calls++
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Records, nil
}

// MockSystemSearcher returns every match whose name has the query as a case-insensitive prefix.
type MockSystemSearcher struct {
	Matches []domain.SystemMatch
}

func (s *MockSystemSearcher) SearchSystems(ctx context.Context, query string) ([]domain.SystemMatch, error) {
	q := strings.ToLower(query)
	out := make([]domain.SystemMatch, 0)
	for _, m := range s.Matches {
		if strings.HasPrefix(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out, nil
}

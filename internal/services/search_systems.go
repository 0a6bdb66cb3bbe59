package services

import (
	"context"
	"errors"
	"fmt"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/ports"
	"strings"
	"unicode/utf8"
)

const minSearchQueryLen = 2

// SearchSystems returns reference system candidates whose name starts with query.
func SearchSystems(ctx context.Context, query string, searcher ports.SystemSearcher) ([]domain.SystemMatch, error) {
	if searcher == nil {
		return nil, errors.New("search systems: searcher must be non-nil")
	}

	q := strings.Join(strings.Fields(query), " ")
	if utf8.RuneCountInString(q) < minSearchQueryLen {
		return nil, fmt.Errorf("search systems: %q: %w", q, domain.ErrQueryTooShort)
	}

	matches, err := searcher.SearchSystems(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search systems: %q: %w", q, err)
	}
	if matches == nil {
		matches = []domain.SystemMatch{}
	}
	return matches, nil
}

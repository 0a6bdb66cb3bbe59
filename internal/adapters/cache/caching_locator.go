package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/ports"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingLocator wraps a SystemLocator with an in-process LRU memo and an
// optional persistent CoordsCache. A system's coordinates never change, so
// entries are never expired.
//
// Lookups go memo -> store -> upstream; upstream results are written back to
// both tiers. Store failures are logged and do not fail the lookup.
type CachingLocator struct {
	next  ports.SystemLocator
	store ports.CoordsCache
	memo  *lru.Cache[string, domain.ReferenceSystem]
}

func NewCachingLocator(next ports.SystemLocator, store ports.CoordsCache, memoSize int) (*CachingLocator, error) {
	if next == nil {
		return nil, errors.New("caching locator: next locator is nil")
	}
	if memoSize <= 0 {
		memoSize = 256
	}
	memo, err := lru.New[string, domain.ReferenceSystem](memoSize)
	if err != nil {
		return nil, fmt.Errorf("caching locator: create memo: %w", err)
	}
	return &CachingLocator{next: next, store: store, memo: memo}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace and case.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func (c *CachingLocator) LocateSystem(ctx context.Context, name string) (domain.ReferenceSystem, error) {
	key := normalize(name)
	if key == "" {
		return domain.ReferenceSystem{}, errors.New("locate system: name must be non-empty")
	}

	if sys, ok := c.memo.Get(key); ok {
		return sys, nil
	}

	if c.store != nil {
		sys, ok, err := c.store.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "coords cache read failed", "name", key, "err", err)
		} else if ok {
			c.memo.Add(key, sys)
			return sys, nil
		}
	}

	sys, err := c.next.LocateSystem(ctx, strings.Join(strings.Fields(name), " "))
	if err != nil {
		return domain.ReferenceSystem{}, err
	}

	// Systems with incomplete coordinates are passed through but never cached.
	if !sys.Coords.Valid() {
		return sys, nil
	}

	c.memo.Add(key, sys)
	if c.store != nil {
		if err := c.store.Put(ctx, key, sys); err != nil {
			slog.WarnContext(ctx, "coords cache write failed", "name", key, "err", err)
		}
	}

	return sys, nil
}

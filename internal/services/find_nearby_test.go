package services

import (
	"context"
	"errors"
	"site-finder-service/internal/adapters/upstream"
	"site-finder-service/internal/domain"
	"testing"
)

func catalogRecord(siteID int64, siteType string, sys domain.SystemRef, bodyID int64) domain.SiteRecord {
	s := sys
	return domain.SiteRecord{
		Site:   domain.Site{ID: siteID, Type: domain.SiteType{Type: siteType}},
		System: &s,
		Body:   &domain.BodyRef{ID: bodyID, Name: sys.Name + " body"},
	}
}

func TestFindNearbySites(t *testing.T) {
	near := domain.SystemRef{ID: 1, Name: "Near", Coords: domain.Coord3{X: 3, Y: 4}}
	far := domain.SystemRef{ID: 2, Name: "Far", Coords: domain.Coord3{X: 30, Y: 40}}
	mid := domain.SystemRef{ID: 3, Name: "Mid", Coords: domain.Coord3{Z: 10}}

	catalog := &upstream.MockSiteCatalog{Records: []domain.SiteRecord{
		catalogRecord(1, "Common Thargoid Barnacle", far, 20),
		catalogRecord(2, "Large Thargoid Barnacle", near, 10),
		catalogRecord(3, "Common Thargoid Barnacle", near, 10),
		catalogRecord(4, "Common Thargoid Barnacle", mid, 30),
		catalogRecord(5, "Common Thargoid Barnacle", near, 11),
	}}
	locator := upstream.NewMockSystemLocator(domain.ReferenceSystem{ID: 99, Name: "Sol"})

	res, err := FindNearbySites(context.Background(), FindNearbyRequest{Reference: " sol ", Kind: domain.SiteKindCommon}, locator, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Reference.Name != "Sol" {
		t.Fatalf("reference = %q, want Sol", res.Reference.Name)
	}
	if len(res.Systems) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(res.Systems))
	}

	wantOrder := []int64{1, 3, 2}
	for i, id := range wantOrder {
		if res.Systems[i].ID != id {
			t.Fatalf("systems[%d] = %d, want %d", i, res.Systems[i].ID, id)
		}
	}
	if got := *res.Systems[0].DistanceToRef; got != 5 {
		t.Fatalf("nearest distance = %v, want 5", got)
	}

	nearSys := res.Systems[0]
	if len(nearSys.Bodies) != 2 {
		t.Fatalf("near bodies = %d, want 2", len(nearSys.Bodies))
	}
	if len(nearSys.Bodies[0].Sites) != 1 || nearSys.Bodies[0].Sites[0].ID != 3 {
		t.Fatalf("large site leaked through the common filter: %+v", nearSys.Bodies[0].Sites)
	}
}

func TestFindNearbySitesUnknownReference(t *testing.T) {
	catalog := &upstream.MockSiteCatalog{}
	locator := upstream.NewMockSystemLocator()

	_, err := FindNearbySites(context.Background(), FindNearbyRequest{Reference: "Nowhere"}, locator, catalog)
	if !errors.Is(err, domain.ErrSystemNotFound) {
		t.Fatalf("err = %v, want ErrSystemNotFound", err)
	}
	if catalog.Calls != 0 {
		t.Fatalf("catalog fetched %d times before reference resolved", catalog.Calls)
	}
}

func TestFindNearbySitesCatalogFailure(t *testing.T) {
	boom := errors.New("boom")
	catalog := &upstream.MockSiteCatalog{Err: boom}
	locator := upstream.NewMockSystemLocator(domain.ReferenceSystem{ID: 1, Name: "Sol"})

	res, err := FindNearbySites(context.Background(), FindNearbyRequest{Reference: "Sol"}, locator, catalog)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on failure, got %+v", res)
	}
}

func TestFindNearbySitesEmptyReference(t *testing.T) {
	_, err := FindNearbySites(context.Background(), FindNearbyRequest{Reference: "  "},
		upstream.NewMockSystemLocator(), &upstream.MockSiteCatalog{})
	if err == nil {
		t.Fatalf("expected error for empty reference")
	}
}

func TestSearchSystems(t *testing.T) {
	searcher := &upstream.MockSystemSearcher{Matches: []domain.SystemMatch{
		{ID: 1, Name: "HIP 17044"},
		{ID: 2, Name: "HIP 17225"},
		{ID: 3, Name: "Pleione"},
	}}

	got, err := SearchSystems(context.Background(), "  hip   17 ", searcher)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("matches = %+v, want ids [1 2]", got)
	}

	if _, err := SearchSystems(context.Background(), "h", searcher); !errors.Is(err, domain.ErrQueryTooShort) {
		t.Fatalf("err = %v, want ErrQueryTooShort", err)
	}
}

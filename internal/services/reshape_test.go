package services

import (
	"errors"
	"site-finder-service/internal/domain"
	"testing"
)

func rec(siteID, systemID, bodyID int64) domain.SiteRecord {
	return domain.SiteRecord{
		Site:   domain.Site{ID: siteID, Type: domain.SiteType{Type: "Common Thargoid Barnacle"}},
		System: &domain.SystemRef{ID: systemID, Name: "sys", Coords: domain.Coord3{X: float64(systemID)}},
		Body:   &domain.BodyRef{ID: bodyID, Name: "body", DistanceToArrival: float64(bodyID)},
	}
}

func TestReshapeGroupsBySystemAndBody(t *testing.T) {
	records := []domain.SiteRecord{
		rec(1, 10, 100),
		rec(2, 20, 200),
		rec(3, 10, 101),
		rec(4, 10, 100),
		rec(5, 20, 200),
	}

	systems, err := Reshape(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(systems) != 2 {
		t.Fatalf("expected 2 systems, got %d", len(systems))
	}
	if systems[0].ID != 10 || systems[1].ID != 20 {
		t.Fatalf("system order = [%d %d], want [10 20]", systems[0].ID, systems[1].ID)
	}

	sys10 := systems[0]
	if len(sys10.Bodies) != 2 {
		t.Fatalf("system 10 bodies = %d, want 2", len(sys10.Bodies))
	}
	if sys10.Bodies[0].ID != 100 || sys10.Bodies[1].ID != 101 {
		t.Fatalf("system 10 body order = [%d %d], want [100 101]", sys10.Bodies[0].ID, sys10.Bodies[1].ID)
	}

	sites := sys10.Bodies[0].Sites
	if len(sites) != 2 || sites[0].ID != 1 || sites[1].ID != 4 {
		t.Fatalf("body 100 sites = %+v, want ids [1 4]", sites)
	}

	sys20 := systems[1]
	if len(sys20.Bodies) != 1 || len(sys20.Bodies[0].Sites) != 2 {
		t.Fatalf("system 20 layout unexpected: %+v", sys20.Bodies)
	}
	if sys20.Bodies[0].Sites[0].ID != 2 || sys20.Bodies[0].Sites[1].ID != 5 {
		t.Fatalf("body 200 site order wrong: %+v", sys20.Bodies[0].Sites)
	}

	for _, s := range systems {
		if s.DistanceToRef != nil {
			t.Fatalf("system %d has DistanceToRef before ranking", s.ID)
		}
	}
}

func TestReshapeDoesNotMutateInput(t *testing.T) {
	records := []domain.SiteRecord{rec(1, 10, 100), rec(2, 10, 100)}

	if _, err := Reshape(records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, r := range records {
		if r.System == nil || r.Body == nil {
			t.Fatalf("record %d lost its parent references", i)
		}
	}
	if records[0].ID != 1 || records[1].ID != 2 {
		t.Fatalf("records reordered: %+v", records)
	}
}

func TestReshapeEmpty(t *testing.T) {
	systems, err := Reshape(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if systems == nil || len(systems) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", systems)
	}
}

func TestReshapeRejectsMalformedRecords(t *testing.T) {
	noSystem := rec(1, 10, 100)
	noSystem.System = nil

	noBody := rec(2, 10, 100)
	noBody.Body = nil

	zeroSystemID := rec(3, 0, 100)

	zeroBodyID := rec(4, 10, 0)

	for name, bad := range map[string]domain.SiteRecord{
		"missing system": noSystem,
		"missing body":   noBody,
		"zero system id": zeroSystemID,
		"zero body id":   zeroBodyID,
	} {
		systems, err := Reshape([]domain.SiteRecord{rec(9, 10, 100), bad})
		if !errors.Is(err, domain.ErrMalformedRecord) {
			t.Errorf("%s: err = %v, want ErrMalformedRecord", name, err)
		}
		if systems != nil {
			t.Errorf("%s: expected no partial tree, got %d systems", name, len(systems))
		}
	}
}

func TestReshapeNoDuplicateIDs(t *testing.T) {
	records := make([]domain.SiteRecord, 0, 60)
	for i := int64(0); i < 60; i++ {
		records = append(records, rec(i+1, 1+i%4, 100+i%7))
	}

	systems, err := Reshape(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSystems := map[int64]struct{}{}
	for _, r := range records {
		wantSystems[r.System.ID] = struct{}{}
	}
	if len(systems) != len(wantSystems) {
		t.Fatalf("systems = %d, want %d", len(systems), len(wantSystems))
	}

	siteCount := 0
	for _, s := range systems {
		seenBodies := map[int64]struct{}{}
		for _, b := range s.Bodies {
			if _, dup := seenBodies[b.ID]; dup {
				t.Fatalf("system %d has duplicate body %d", s.ID, b.ID)
			}
			seenBodies[b.ID] = struct{}{}

			for _, site := range b.Sites {
				orig := records[site.ID-1]
				if orig.System.ID != s.ID || orig.Body.ID != b.ID {
					t.Fatalf("site %d placed under %d/%d, want %d/%d",
						site.ID, s.ID, b.ID, orig.System.ID, orig.Body.ID)
				}
				siteCount++
			}
		}
	}
	if siteCount != len(records) {
		t.Fatalf("sites in tree = %d, want %d", siteCount, len(records))
	}
}

func TestReshapeFlattenRoundTrip(t *testing.T) {
	records := []domain.SiteRecord{
		rec(1, 10, 100),
		rec(2, 20, 200),
		rec(3, 10, 101),
		rec(4, 10, 100),
	}

	first, err := Reshape(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Reshape(Flatten(first))
	if err != nil {
		t.Fatalf("unexpected error on re-expansion: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("systems = %d, want %d", len(second), len(first))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.ID != b.ID || len(a.Bodies) != len(b.Bodies) {
			t.Fatalf("system %d differs after round trip", a.ID)
		}
		for j := range a.Bodies {
			if a.Bodies[j].ID != b.Bodies[j].ID {
				t.Fatalf("system %d body %d differs after round trip", a.ID, j)
			}
			if len(a.Bodies[j].Sites) != len(b.Bodies[j].Sites) {
				t.Fatalf("body %d site count differs after round trip", a.Bodies[j].ID)
			}
			for k := range a.Bodies[j].Sites {
				if a.Bodies[j].Sites[k].ID != b.Bodies[j].Sites[k].ID {
					t.Fatalf("body %d site %d differs after round trip", a.Bodies[j].ID, k)
				}
			}
		}
	}
}

package services

import (
	"errors"
	"math"
	"site-finder-service/internal/domain"
	"testing"
)

func TestRankDistance(t *testing.T) {
	systems := []*domain.System{{ID: 1, Coords: domain.Coord3{X: 3, Y: 4, Z: 0}}}

	ranked, err := Rank(systems, domain.Coord3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].DistanceToRef == nil {
		t.Fatalf("DistanceToRef not set")
	}
	if got := *ranked[0].DistanceToRef; got != 5.00 {
		t.Fatalf("distance = %v, want 5.00", got)
	}
}

func TestRankRoundsToTwoDecimals(t *testing.T) {
	systems := []*domain.System{{ID: 1, Coords: domain.Coord3{X: 1, Y: 1, Z: 1}}}

	ranked, err := Rank(systems, domain.Coord3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *ranked[0].DistanceToRef; got != 1.73 {
		t.Fatalf("distance = %v, want 1.73", got)
	}
}

func TestRankSortsAscending(t *testing.T) {
	systems := []*domain.System{
		{ID: 1, Coords: domain.Coord3{X: 10}},
		{ID: 2, Coords: domain.Coord3{Y: 2.5}},
		{ID: 3, Coords: domain.Coord3{Z: 7}},
	}

	ranked, err := Rank(systems, domain.Coord3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{2.5, 7, 10}
	for i, w := range want {
		if got := *ranked[i].DistanceToRef; got != w {
			t.Fatalf("ranked[%d] distance = %v, want %v", i, got, w)
		}
	}

	// Caller's slice keeps its order.
	if systems[0].ID != 1 || systems[1].ID != 2 || systems[2].ID != 3 {
		t.Fatalf("input slice reordered")
	}
}

func TestRankStableOnTies(t *testing.T) {
	systems := []*domain.System{
		{ID: 7, Coords: domain.Coord3{X: 5}},
		{ID: 3, Coords: domain.Coord3{Y: -5}},
		{ID: 1, Coords: domain.Coord3{Z: 1}},
	}

	ranked, err := Rank(systems, domain.Coord3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ranked[0].ID != 1 || ranked[1].ID != 7 || ranked[2].ID != 3 {
		t.Fatalf("order = [%d %d %d], want [1 7 3]", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}
}

func TestRankReferenceSortsFirst(t *testing.T) {
	ref := domain.Coord3{X: 12.5, Y: -3, Z: 40}
	systems := []*domain.System{
		{ID: 1, Coords: domain.Coord3{X: 13, Y: -3, Z: 40}},
		{ID: 2, Coords: ref},
	}

	ranked, err := Rank(systems, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].ID != 2 || *ranked[0].DistanceToRef != 0 {
		t.Fatalf("reference system not first with distance 0: %+v", ranked[0])
	}
}

func TestRankEmpty(t *testing.T) {
	ranked, err := Rank(nil, domain.Coord3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", ranked)
	}
}

func TestRankRejectsNonFiniteCoordinates(t *testing.T) {
	systems := []*domain.System{{ID: 1, Coords: domain.Coord3{X: math.NaN()}}}
	if _, err := Rank(systems, domain.Coord3{}); !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("system NaN err = %v, want ErrInvalidCoordinates", err)
	}

	ok := []*domain.System{{ID: 1}}
	if _, err := Rank(ok, domain.Coord3{Y: math.Inf(1)}); !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("reference Inf err = %v, want ErrInvalidCoordinates", err)
	}
}

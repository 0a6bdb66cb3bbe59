package services

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"site-finder-service/internal/domain"
	"slices"
)

// Rank sets DistanceToRef on every system and orders them nearest first.
//
// Distances are rounded to two decimals before comparison, so systems whose
// distances agree at display precision keep their input order (stable sort).
// The returned slice is a reordered copy; the input slice is left in place.
func Rank(systems []*domain.System, ref domain.Coord3) ([]*domain.System, error) {
	if !ref.Valid() {
		return nil, fmt.Errorf("rank: reference %+v: %w", ref, domain.ErrInvalidCoordinates)
	}

	ranked := make([]*domain.System, 0, len(systems))
	for _, sys := range systems {
		if sys == nil {
			return nil, errors.New("rank: nil system in input")
		}
		if !sys.Coords.Valid() {
			return nil, fmt.Errorf("rank: system id=%d %q: %w", sys.ID, sys.Name, domain.ErrInvalidCoordinates)
		}

		d := RoundDistance(sys.Coords.DistanceTo(ref))
		sys.DistanceToRef = &d
		ranked = append(ranked, sys)
	}

	slices.SortStableFunc(ranked, func(a, b *domain.System) int {
		return cmp.Compare(*a.DistanceToRef, *b.DistanceToRef)
	})

	return ranked, nil
}

// RoundDistance rounds a distance to two decimal places.
func RoundDistance(d float64) float64 {
	return math.Round(d*100) / 100
}

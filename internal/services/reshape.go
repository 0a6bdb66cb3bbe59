package services

import (
	"fmt"
	"site-finder-service/internal/domain"
)

// Reshape groups flat site records into a system -> body -> site tree.
//
// Systems, bodies and sites keep the order in which they were first seen in
// records. No sorting happens here; see Rank. A record missing its system or
// body reference fails the whole call so a partial tree is never returned.
func Reshape(records []domain.SiteRecord) ([]*domain.System, error) {
	systems := make([]*domain.System, 0)

	// Positions into systems and into each system's body list.
	systemIdx := make(map[int64]int)
	bodyIdx := make(map[int64]map[int64]int)

	for i, rec := range records {
		if err := checkRecord(rec); err != nil {
			return nil, fmt.Errorf("reshape: record #%d: %w", i, err)
		}

		site := rec.Site

		si, ok := systemIdx[rec.System.ID]
		if !ok {
			si = len(systems)
			systemIdx[rec.System.ID] = si
			bodyIdx[rec.System.ID] = make(map[int64]int)
			systems = append(systems, &domain.System{
				ID:     rec.System.ID,
				Name:   rec.System.Name,
				Coords: rec.System.Coords,
				Bodies: []*domain.Body{},
			})
		}
		system := systems[si]

		bodies := bodyIdx[rec.System.ID]
		bi, ok := bodies[rec.Body.ID]
		if !ok {
			bi = len(system.Bodies)
			bodies[rec.Body.ID] = bi
			system.Bodies = append(system.Bodies, &domain.Body{
				ID:                rec.Body.ID,
				Name:              rec.Body.Name,
				DistanceToArrival: rec.Body.DistanceToArrival,
				Sites:             []domain.Site{},
			})
		}
		body := system.Bodies[bi]

		body.Sites = append(body.Sites, site)
	}

	return systems, nil
}

func checkRecord(rec domain.SiteRecord) error {
	if rec.System == nil {
		return fmt.Errorf("site id=%d: missing system: %w", rec.ID, domain.ErrMalformedRecord)
	}
	if rec.System.ID == 0 {
		return fmt.Errorf("site id=%d: system has no id: %w", rec.ID, domain.ErrMalformedRecord)
	}
	if rec.Body == nil {
		return fmt.Errorf("site id=%d: missing body: %w", rec.ID, domain.ErrMalformedRecord)
	}
	if rec.Body.ID == 0 {
		return fmt.Errorf("site id=%d: body has no id: %w", rec.ID, domain.ErrMalformedRecord)
	}
	return nil
}

// Flatten expands a system tree back into flat site records.
// It is the inverse of Reshape up to record order.
func Flatten(systems []*domain.System) []domain.SiteRecord {
	out := make([]domain.SiteRecord, 0)
	for _, sys := range systems {
		sysRef := &domain.SystemRef{ID: sys.ID, Name: sys.Name, Coords: sys.Coords}
		for _, body := range sys.Bodies {
			bodyRef := &domain.BodyRef{ID: body.ID, Name: body.Name, DistanceToArrival: body.DistanceToArrival}
			for _, site := range body.Sites {
				out = append(out, domain.SiteRecord{Site: site, System: sysRef, Body: bodyRef})
			}
		}
	}
	return out
}

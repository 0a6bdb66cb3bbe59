package services

import "site-finder-service/internal/domain"

// FilterSites keeps the records whose type belongs to kind, preserving order.
func FilterSites(records []domain.SiteRecord, kind domain.SiteKind) []domain.SiteRecord {
	out := make([]domain.SiteRecord, 0, len(records))
	for _, rec := range records {
		if kind.Matches(rec.Type.Type) {
			out = append(out, rec)
		}
	}
	return out
}

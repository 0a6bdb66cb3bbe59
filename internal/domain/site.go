package domain

// Categorical tag attached to a catalogued site (e.g. "Common Thargoid Barnacle").
type SiteType struct {
	ID   int64
	Type string
}

// Parent system as embedded in a flat catalog record.
type SystemRef struct {
	ID     int64
	Name   string
	Coords Coord3
}

// Parent body as embedded in a flat catalog record.
type BodyRef struct {
	ID                int64
	Name              string
	DistanceToArrival float64
}

// A catalogued surface location, stripped of its parent references.
// Latitude and Longitude are nil when the catalog has no value for them.
type Site struct {
	ID        int64
	SiteID    int64
	Latitude  *float64
	Longitude *float64
	Type      SiteType
}

// SiteRecord is one flat entry of the site catalog.
// System and Body are nil when the upstream record omitted them.
type SiteRecord struct {
	Site
	System *SystemRef
	Body   *BodyRef
}

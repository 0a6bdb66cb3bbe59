package domain

// A celestial body within a System owning its sites in first-seen order.
type Body struct {
	ID                int64
	Name              string
	DistanceToArrival float64
	Sites             []Site
}

// An astronomical system owning its bodies in first-seen order.
// DistanceToRef is nil until the system has been ranked against a reference.
type System struct {
	ID            int64
	Name          string
	Coords        Coord3
	DistanceToRef *float64
	Bodies        []*Body
}

// The system distances are measured from.
type ReferenceSystem struct {
	ID     int64
	Name   string
	Coords Coord3
}

// A candidate returned by a system name search.
type SystemMatch struct {
	ID   int64
	Name string
}

// NearbyResult is the ranked outcome of a single site query.
type NearbyResult struct {
	Reference ReferenceSystem
	Kind      SiteKind
	Systems   []*System
}

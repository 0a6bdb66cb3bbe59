package dto

type ReferenceResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

type SiteResponse struct {
	ID        int64    `json:"id"`
	SiteID    int64    `json:"site_id"`
	Type      string   `json:"type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type BodyResponse struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	DistanceToArrival float64        `json:"distance_to_arrival"`
	Sites             []SiteResponse `json:"sites"`
}

type SystemResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	X             float64        `json:"x"`
	Y             float64        `json:"y"`
	Z             float64        `json:"z"`
	DistanceToRef string         `json:"distance_to_ref"`
	Bodies        []BodyResponse `json:"bodies"`
}

type NearbySitesResponse struct {
	Reference ReferenceResponse `json:"reference"`
	Type      string            `json:"type"`
	Systems   []SystemResponse  `json:"systems"`
}

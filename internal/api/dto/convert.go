package dto

import (
	"site-finder-service/internal/domain"
	"strconv"
)

// FormatDistance renders a ranked distance with two decimals ("5.00").
func FormatDistance(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(*d, 'f', 2, 64)
}

// FromNearbyResult converts a ranked query result into its wire form.
func FromNearbyResult(res *domain.NearbyResult) NearbySitesResponse {
	out := NearbySitesResponse{
		Reference: ReferenceResponse{
			ID:   res.Reference.ID,
			Name: res.Reference.Name,
			X:    res.Reference.Coords.X,
			Y:    res.Reference.Coords.Y,
			Z:    res.Reference.Coords.Z,
		},
		Type:    string(res.Kind),
		Systems: make([]SystemResponse, 0, len(res.Systems)),
	}

	for _, sys := range res.Systems {
		bodies := make([]BodyResponse, 0, len(sys.Bodies))
		for _, b := range sys.Bodies {
			sites := make([]SiteResponse, 0, len(b.Sites))
			for _, s := range b.Sites {
				sites = append(sites, SiteResponse{
					ID:        s.ID,
					SiteID:    s.SiteID,
					Type:      s.Type.Type,
					Latitude:  s.Latitude,
					Longitude: s.Longitude,
				})
			}
			bodies = append(bodies, BodyResponse{
				ID:                b.ID,
				Name:              b.Name,
				DistanceToArrival: b.DistanceToArrival,
				Sites:             sites,
			})
		}

		out.Systems = append(out.Systems, SystemResponse{
			ID:            sys.ID,
			Name:          sys.Name,
			X:             sys.Coords.X,
			Y:             sys.Coords.Y,
			Z:             sys.Coords.Z,
			DistanceToRef: FormatDistance(sys.DistanceToRef),
			Bodies:        bodies,
		})
	}

	return out
}

package main

import (
	"fmt"
	"io"
	"site-finder-service/internal/api/dto"
	"site-finder-service/internal/domain"
	"strconv"

	"github.com/dustin/go-humanize"
)

// renderTree prints systems, bodies and sites as an indented outline:
//
//	Merope  (5.00 ly)
//	  Merope 2 a  (1,234.5 ls)
//	    Common Thargoid Barnacle  lat 12.5  lon -40.25
func renderTree(w io.Writer, res *domain.NearbyResult) error {
	if _, err := fmt.Fprintf(w, "%d systems with %s sites near %s\n\n",
		len(res.Systems), res.Kind, res.Reference.Name); err != nil {
		return err
	}

	for _, sys := range res.Systems {
		fmt.Fprintf(w, "%s  (%s ly)\n", sys.Name, dto.FormatDistance(sys.DistanceToRef))
		for _, body := range sys.Bodies {
			fmt.Fprintf(w, "  %s  (%s ls)\n", body.Name, humanize.Commaf(body.DistanceToArrival))
			for _, site := range body.Sites {
				fmt.Fprintf(w, "    %s  lat %s  lon %s\n", siteLabel(site), coord(site.Latitude), coord(site.Longitude))
			}
		}
	}
	return nil
}

func siteLabel(s domain.Site) string {
	if s.Type.Type == "" {
		return "(untyped)"
	}
	return s.Type.Type
}

func coord(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

package handlers

import (
	"net/http"
	"site-finder-service/internal/api/dto"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/ports"
	"site-finder-service/internal/services"
	"strings"
)

type SitesHandler struct {
	Locator ports.SystemLocator
	Catalog ports.SiteCatalog
	Metrics *obs.Metrics
}

// Nearby answers GET /sites?reference=<system>&type=<kind> with the systems
// holding matching sites, nearest to the reference first.
func (h *SitesHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	reference := strings.TrimSpace(q.Get("reference"))
	if reference == "" {
		writeError(w, r, http.StatusBadRequest, "reference is required")
		return
	}

	kind, err := domain.ParseSiteKind(q.Get("type"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "type must be one of all, unknown, common, large")
		return
	}

	res, err := services.FindNearbySites(
		r.Context(),
		services.FindNearbyRequest{Reference: reference, Kind: kind},
		h.Locator,
		h.Catalog,
	)
	if err != nil {
		writeServiceError(w, r, "find nearby sites", err)
		return
	}

	h.Metrics.ObserveSystemsReturned(len(res.Systems))
	writeJSON(w, r, http.StatusOK, dto.FromNearbyResult(res))
}

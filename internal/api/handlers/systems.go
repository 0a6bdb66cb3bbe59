package handlers

import (
	"net/http"
	"site-finder-service/internal/api/dto"
	"site-finder-service/internal/ports"
	"site-finder-service/internal/services"
)

// SystemsHandler backs reference system autocomplete.
type SystemsHandler struct {
	Searcher ports.SystemSearcher
}

func (h *SystemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	matches, err := services.SearchSystems(r.Context(), r.URL.Query().Get("q"), h.Searcher)
	if err != nil {
		writeServiceError(w, r, "search systems", err)
		return
	}

	res := dto.SearchSystemsResponse{Systems: make([]dto.SystemMatchResponse, 0, len(matches))}
	for _, m := range matches {
		res.Systems = append(res.Systems, dto.SystemMatchResponse{ID: m.ID, Name: m.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

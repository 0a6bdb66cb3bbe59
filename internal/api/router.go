package api

import (
	"net/http"
	"site-finder-service/internal/api/handlers"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/ports"
)

// Dependencies needed by the HTTP API.
type Deps struct {
	Locator  ports.SystemLocator
	Searcher ports.SystemSearcher
	Catalog  ports.SiteCatalog
	Metrics  *obs.Metrics
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	sitesHandler := &handlers.SitesHandler{
		Locator: deps.Locator,
		Catalog: deps.Catalog,
		Metrics: deps.Metrics,
	}
	systemsHandler := &handlers.SystemsHandler{Searcher: deps.Searcher}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sites", sitesHandler.Nearby)
	mux.HandleFunc("/systems/search", systemsHandler.Search)
	mux.Handle("/metrics", deps.Metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(deps.Metrics, mux))
}

package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON endpoints.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/packages.json", http.HandlerFunc(api.packagesHandler))
	router.Handler(http.MethodGet, "/api/parts/:part", http.HandlerFunc(api.partHandler))
	router.Handler(http.MethodGet, "/api/package/:id", http.HandlerFunc(api.packageHandler))
	router.Handler(http.MethodGet, "/healthz", http.HandlerFunc(api.healthHandler))
}

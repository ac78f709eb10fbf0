package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the HTML pages and static assets. The catalog debug
// page is only mounted outside production.
func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/", http.HandlerFunc(webUI.indexHandler))
	router.Handler(http.MethodGet, "/parte/:part", http.HandlerFunc(webUI.partHandler))
	router.Handler(http.MethodGet, "/static/*filepath",
		http.StripPrefix("/static", http.FileServer(http.FS(StaticFiles()))))

	if !webUI.Config.Env.IsProduction() {
		router.Handler(http.MethodGet, "/debug/catalog", http.HandlerFunc(webUI.debugCatalogHandler))
	}

	router.NotFound = webUI.NotFoundHandler()
}

package webui

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/davecgh/go-spew/spew"

	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/utils"
)

var debugDataTypes = []string{"part1", "part2", "panels", "page"}

func (webUI *WebUI) debugCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.RequestHasInvalidDebugKey(r) {
		webUI.errorPage(w, r, http.StatusUnauthorized, "Clave de depuración inválida")
		return
	}

	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "part1":
		data = webUI.Catalog.PartOne()
		title = "Catalog - Parte 1"
	case "part2":
		data = webUI.Catalog.PartTwo()
		title = "Catalog - Parte 2"
	case "panels":
		panels := make(map[catalog.Part]catalog.Panel)
		for _, p := range catalog.Parts() {
			panels[p], _ = webUI.Catalog.Panel(p)
		}
		data = panels
		title = "Catalog - Panels"
	case "page":
		data = webUI.Catalog.Page()
		title = "Catalog - Page texts"
	default:
		data = map[string]string{
			"error": "Please use one of the following: part1, part2, panels, page.",
		}
		title = "Choose a data type"
	}

	key := url.QueryEscape(utils.SanitizeInput(r.URL.Query().Get("key")))
	links := make([]string, len(debugDataTypes))
	for i, dataType := range debugDataTypes {
		links[i] = "/debug/catalog?dataType=" + dataType + "&key=" + key
	}

	var buf bytes.Buffer
	if err := webUI.renderer.RenderDebug(&buf, title, links, spew.Sdump(data)); err != nil {
		webUI.serverErrorPage(w, r, err)
		return
	}
	webUI.writeHTML(w, r, http.StatusOK, &buf)
}

package webui

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/views"
)

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	webUI.renderPart(w, r, catalog.Part1)
}

func (webUI *WebUI) partHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())

	part, err := catalog.ParsePart(params.ByName("part"))
	if err != nil {
		webUI.errorPage(w, r, http.StatusNotFound, "Esa parte no existe")
		return
	}

	webUI.renderPart(w, r, part)
}

func (webUI *WebUI) renderPart(w http.ResponseWriter, r *http.Request, part catalog.Part) {
	page, err := views.PageFor(webUI.Catalog, part)
	if errors.Is(err, catalog.ErrUnknownPart) {
		webUI.errorPage(w, r, http.StatusNotFound, "Esa parte no existe")
		return
	}
	if err != nil {
		webUI.serverErrorPage(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := webUI.renderer.RenderPage(&buf, page); err != nil {
		webUI.serverErrorPage(w, r, err)
		return
	}

	webUI.writeHTML(w, r, http.StatusOK, &buf)
}

package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/logging"
)

// WebUI serves the HTML pages and their static assets.
type WebUI struct {
	*app.Application
	renderer *Renderer
}

func NewWebUI(application *app.Application) (*WebUI, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &WebUI{Application: application, renderer: renderer}, nil
}

func (webUI *WebUI) writeHTML(w http.ResponseWriter, r *http.Request, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := body.WriteTo(w); err != nil {
		logging.LogError(webUI.loggerFor(r), "failed to write response", err,
			slog.String("path", r.URL.Path))
	}
}

// errorPage renders the HTML error page, falling back to plain text if the
// template itself fails.
func (webUI *WebUI) errorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	var buf bytes.Buffer
	if err := webUI.renderer.RenderError(&buf, status, webUI.Catalog.Page().Brand, message); err != nil {
		logging.LogError(webUI.loggerFor(r), "failed to render error page", err,
			slog.Int("status", status))
		http.Error(w, http.StatusText(status), status)
		return
	}
	webUI.writeHTML(w, r, status, &buf)
}

func (webUI *WebUI) serverErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(webUI.loggerFor(r), "failed to render page", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	webUI.errorPage(w, r, http.StatusInternalServerError, "Algo salió mal. Intenta de nuevo.")
}

// NotFoundHandler answers unmatched routes with the HTML 404 page.
func (webUI *WebUI) NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webUI.errorPage(w, r, http.StatusNotFound, "Página no encontrada")
	})
}

// loggerFor prefers the request-scoped logger set by the logging middleware.
func (webUI *WebUI) loggerFor(r *http.Request) *slog.Logger {
	return logging.FromContextOr(r.Context(), webUI.Logger)
}

package webui

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"infografias.nextwaveia.mx/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFiles returns the stylesheet and logo rooted at the static directory.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type pageData struct {
	Page      views.Page
	InlineCSS template.CSS
	LogoData  template.URL
}

type errorData struct {
	Status  int
	Brand   string
	Message string
}

type debugData struct {
	Title string
	Links []string
	Pre   string
}

// Renderer executes the page templates. Output is buffered so a failing
// template never leaves a half-written response.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// RenderPage writes the page that links /static/styles.css.
func (r *Renderer) RenderPage(w io.Writer, page views.Page) error {
	return r.execute(w, "page.html", pageData{Page: page})
}

// RenderStandalone writes the page with the stylesheet and logo inlined, so the
// file can be opened without a server.
func (r *Renderer) RenderStandalone(w io.Writer, page views.Page) error {
	css, err := fs.ReadFile(staticFS, "static/styles.css")
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	logo, err := fs.ReadFile(staticFS, "static/logo-inphografic.svg")
	if err != nil {
		return fmt.Errorf("read logo: %w", err)
	}

	return r.execute(w, "page.html", pageData{
		Page:      page,
		InlineCSS: template.CSS(css),
		LogoData:  template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(logo)),
	})
}

func (r *Renderer) RenderError(w io.Writer, status int, brand, message string) error {
	return r.execute(w, "error.html", errorData{Status: status, Brand: brand, Message: message})
}

func (r *Renderer) RenderDebug(w io.Writer, title string, links []string, dump string) error {
	return r.execute(w, "debug_index.html", debugData{Title: title, Links: links, Pre: dump})
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

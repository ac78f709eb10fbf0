package webui

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/logging"
)

func createTestWebUI(t *testing.T, env app.Environment) (*WebUI, *httprouter.Router) {
	t.Helper()
	application := app.New(app.Config{Env: env, DebugKeys: []string{"dev"}},
		logging.NewStructuredLogger(io.Discard, slog.LevelDebug), catalog.Default())

	webUI, err := NewWebUI(application)
	require.NoError(t, err)

	router := httprouter.New()
	webUI.SetRoutes(router)
	return webUI, router
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func parseHTML(t *testing.T, body []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// byTestID returns every element whose data-testid matches pred, in document order.
func byTestID(root *html.Node, pred func(string) bool) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && pred(attr(n, "data-testid")) {
			out = append(out, n)
		}
	})
	return out
}

func findTestID(t *testing.T, root *html.Node, id string) *html.Node {
	t.Helper()
	nodes := byTestID(root, func(s string) bool { return s == id })
	require.Len(t, nodes, 1, "data-testid %q", id)
	return nodes[0]
}

func hasTestIDPrefix(prefix string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// text returns the whitespace-normalised text content of n.
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

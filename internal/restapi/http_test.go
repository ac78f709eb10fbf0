package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/logging"
)

func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	application := app.New(app.Config{Env: app.Testing, RateLimit: 100},
		logging.NewStructuredLogger(io.Discard, slog.LevelDebug), catalog.Default())

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

func serveApi(t *testing.T, api *RestAPI, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := newTestRouter(api)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	api.WithMiddleware(router).ServeHTTP(rec, req)
	return rec
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// decode unmarshals a JSON body into a generic map.
func decode(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}

package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagesHandler(t *testing.T) {
	api := createTestApi(t)

	rec := serveApi(t, api, "/api/packages.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	model := decode(t, rec.Body)
	assert.Equal(t, float64(200), model["code"])
	assert.Equal(t, float64(2), model["version"])
	assert.Equal(t, "OK", model["text"])
	assert.NotZero(t, model["currentTime"])

	data := model["data"].(map[string]interface{})
	assert.Equal(t, false, data["limitExceeded"])

	list := data["list"].([]interface{})
	require.Len(t, list, 8)

	var ids []float64
	for _, item := range list {
		entry := item.(map[string]interface{})
		ids = append(ids, entry["id"].(float64))
		assert.Equal(t, "MXN", entry["currency"])
		assert.NotEmpty(t, entry["includes"])
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, ids)

	first := list[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["part"])
	assert.NotContains(t, first, "badge")

	last := list[7].(map[string]interface{})
	assert.Equal(t, float64(2), last["part"])
	assert.Equal(t, map[string]interface{}{"label": "PREMIUM", "tone": "premium"}, last["badge"])
}

func TestPartHandler(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		target   string
		part     float64
		title    string
		cta      string
		firstID  float64
		lastName string
	}{
		{target: "/api/parts/1", part: 1, title: "PAQUETES DE DESARROLLO WEB", cta: "AGENDA TU CONSULTA GRATIS", firstID: 1, lastName: "MICROEMPRESA"},
		{target: "/api/parts/2.json", part: 2, title: "PAQUETES PREMIUM", cta: "CONTÁCTANOS HOY", firstID: 5, lastName: "WEB PRO PLUS ⭐⭐"},
		{target: "/api/parts/parte-2", part: 2, title: "PAQUETES PREMIUM", cta: "CONTÁCTANOS HOY", firstID: 5, lastName: "WEB PRO PLUS ⭐⭐"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serveApi(t, api, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			data := decode(t, rec.Body)["data"].(map[string]interface{})
			entry := data["entry"].(map[string]interface{})

			assert.Equal(t, tt.part, entry["part"])
			assert.Equal(t, tt.title, entry["title"])
			assert.Equal(t, tt.cta, entry["cta"])
			assert.Equal(t, "https://wa.me/526122893294", entry["contactUrl"])
			assert.Equal(t, "MXN", entry["currency"])

			packages := entry["packages"].([]interface{})
			require.Len(t, packages, 4)
			assert.Equal(t, tt.firstID, packages[0].(map[string]interface{})["id"])
			assert.Equal(t, tt.lastName, packages[3].(map[string]interface{})["name"])
		})
	}
}

func TestPartHandlerUnknownPart(t *testing.T) {
	api := createTestApi(t)

	for _, target := range []string{"/api/parts/3", "/api/parts/dos.json", "/api/parts/0", "/api/parts/+2.json", "/api/parts/02"} {
		t.Run(target, func(t *testing.T) {
			rec := serveApi(t, api, target)
			assert.Equal(t, http.StatusNotFound, rec.Code)

			model := decode(t, rec.Body)
			assert.Equal(t, float64(404), model["code"])
			assert.Equal(t, float64(1), model["version"])
			assert.Equal(t, "resource not found", model["text"])
		})
	}
}

func TestPackageHandler(t *testing.T) {
	api := createTestApi(t)

	rec := serveApi(t, api, "/api/package/7.json")
	require.Equal(t, http.StatusOK, rec.Code)

	entry := decode(t, rec.Body)["data"].(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, float64(7), entry["id"])
	assert.Equal(t, "WEB PRO ⭐", entry["name"])
	assert.Equal(t, "$14,499", entry["price"])
	assert.Equal(t, "20–25 días", entry["time"])
	assert.Equal(t, "#fb923c", entry["accent"])
	assert.Equal(t, "Dueños de negocio ambiciosos", entry["idealFor"])
	assert.Equal(t, float64(2), entry["part"])
	assert.Equal(t, map[string]interface{}{"label": "RECOMENDADO", "tone": "recommended"}, entry["badge"])
	assert.Len(t, entry["includes"], 7)
}

func TestPackageHandlerErrors(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name    string
		target  string
		status  int
		message string
	}{
		{name: "letters", target: "/api/package/abc", status: http.StatusBadRequest, message: "id contains invalid characters"},
		{name: "zero", target: "/api/package/0", status: http.StatusBadRequest, message: "id must be positive"},
		{name: "too long", target: "/api/package/1234567890", status: http.StatusBadRequest, message: "id too long (max 9 characters)"},
		{name: "unknown", target: "/api/package/99", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveApi(t, api, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			model := decode(t, rec.Body)
			if tt.status == http.StatusBadRequest {
				fieldErrors := model["fieldErrors"].(map[string]interface{})
				assert.Equal(t, []interface{}{tt.message}, fieldErrors["id"])
				return
			}
			assert.Equal(t, float64(tt.status), model["code"])
		})
	}
}

func TestHealthHandler(t *testing.T) {
	api := createTestApi(t)

	rec := serveApi(t, api, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, decode(t, rec.Body))
}

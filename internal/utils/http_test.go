package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	// Define test cases
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic ID",
			id:   "7",
			want: "7",
		},
		{
			name: "ID with JSON extension",
			id:   "2.json",
			want: "2",
		},
		{
			name: "ID with multiple dots",
			id:   "8.data.json",
			want: "8.data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "id")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result, "ExtractIDFromParams should correctly extract and clean the ID")
		})
	}
}

func TestExtractIDFromParamsWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/test/1", nil)
	assert.Empty(t, ExtractIDFromParams(req, "id"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", ClientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", ClientIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", ClientIP(req))
}

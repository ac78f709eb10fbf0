package app

import "net/http"

// RequestHasInvalidDebugKey reports whether the request's "key" query
// parameter fails to match a configured debug key.
func (app *Application) RequestHasInvalidDebugKey(r *http.Request) bool {
	key := r.URL.Query().Get("key")
	return app.IsInvalidDebugKey(key)
}

func (app *Application) IsInvalidDebugKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.DebugKeys {
		if key == validKey {
			return false
		}
	}

	return true
}

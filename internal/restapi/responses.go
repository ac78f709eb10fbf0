package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"infografias.nextwaveia.mx/internal/logging"
	"infografias.nextwaveia.mx/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	api.writeJSON(w, r, response.Code, response)
}

func (api *RestAPI) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	writeJSONResponse(w, logging.FromContextOr(r.Context(), api.Logger), r.URL.Path, status, body)
}

// writeJSONResponse encodes body with the given status. Encoding failures are
// logged since the status line is already sent.
func writeJSONResponse(w http.ResponseWriter, logger *slog.Logger, path string, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.LogError(logger, "failed to encode response", err,
			slog.String("path", path),
			slog.Int("status", status))
	}
}

package restapi

import (
	"log/slog"
	"net/http"

	"infografias.nextwaveia.mx/internal/logging"
	"infografias.nextwaveia.mx/internal/models"
)

// errorResponse is the version 1 envelope used for failures.
type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func newErrorResponse(code int, text string) errorResponse {
	return errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}
}

func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.writeJSON(w, r, http.StatusNotFound, newErrorResponse(http.StatusNotFound, "resource not found"))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContextOr(r.Context(), api.Logger), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	api.writeJSON(w, r, http.StatusInternalServerError,
		newErrorResponse(http.StatusInternalServerError, "internal server error"))
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}
	api.writeJSON(w, r, http.StatusBadRequest, response)
}

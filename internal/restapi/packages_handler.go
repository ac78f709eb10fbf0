package restapi

import (
	"fmt"
	"net/http"

	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/models"
	"infografias.nextwaveia.mx/internal/utils"
	"infografias.nextwaveia.mx/internal/views"
)

func (api *RestAPI) packagesHandler(w http.ResponseWriter, r *http.Request) {
	var list []models.PackageEntry
	for _, part := range catalog.Parts() {
		for _, record := range api.Catalog.Records(part) {
			list = append(list, models.NewPackageEntry(record, part, views.Currency))
		}
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

func (api *RestAPI) partHandler(w http.ResponseWriter, r *http.Request) {
	part, err := catalog.ParsePart(utils.ExtractIDFromParams(r, "part"))
	if err != nil {
		api.notFoundResponse(w, r)
		return
	}

	panel, ok := api.Catalog.Panel(part)
	if !ok {
		// A validated catalog always carries both panels.
		api.serverErrorResponse(w, r, fmt.Errorf("catalog has no panel for %s", part))
		return
	}

	entry := models.NewPartEntry(part, panel, api.Catalog.Page().ContactURL, views.Currency, api.Catalog.Records(part))
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func (api *RestAPI) packageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParsePackageID(utils.ExtractIDFromParams(r, "id"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	record, part, ok := api.Catalog.Find(id)
	if !ok {
		api.notFoundResponse(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewPackageEntry(record, part, views.Currency)))
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

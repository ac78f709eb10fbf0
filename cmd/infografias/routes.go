package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/restapi"
	"infografias.nextwaveia.mx/internal/webui"
)

// routes mounts the pages and the JSON API on one router behind the shared
// middleware chain. The returned func releases the rate limiter.
func routes(application *app.Application) (http.Handler, func(), error) {
	router := httprouter.New()

	webUI, err := webui.NewWebUI(application)
	if err != nil {
		return nil, nil, err
	}
	webUI.SetRoutes(router)

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	return api.WithMiddleware(router), api.Shutdown, nil
}

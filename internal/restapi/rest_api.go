package restapi

import (
	"time"

	"infografias.nextwaveia.mx/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, "/healthz"),
	}
}

// Shutdown stops the rate limiter's cleanup goroutine.
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
